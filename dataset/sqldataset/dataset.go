package sqldataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
)

/*
Dataset is a dataset.Dataset and a dataset.Writer over a database
*/
type Dataset struct {
	adapter Adapter
}

/*
New takes a context and an Adapter, ensures the tables for the
dataset exist and returns the dataset, or an error if the tables
cannot be created.
*/
func New(ctx context.Context, a Adapter) (*Dataset, error) {
	err := a.CreateTables(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "creating dataset tables")
	}
	return &Dataset{a}, nil
}

// Examples returns every example in the database in order
func (ds *Dataset) Examples(ctx context.Context) ([]dataset.Example, error) {
	var examples []dataset.Example
	err := ds.Each(ctx, func(e dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return examples, nil
}

// Count returns the number of examples in the database
func (ds *Dataset) Count(ctx context.Context) (int, error) {
	return ds.adapter.CountExamples(ctx)
}

// Each iterates on the examples in the database in order
func (ds *Dataset) Each(ctx context.Context, lambda func(dataset.Example) (bool, error)) error {
	return ds.adapter.IterateOnExamples(ctx, lambda)
}

// Write adds the examples to the database
func (ds *Dataset) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	return ds.adapter.AddExamples(ctx, examples)
}

// Close closes the underlying adapter
func (ds *Dataset) Close() error {
	return ds.adapter.Close()
}
