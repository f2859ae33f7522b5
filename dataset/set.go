package dataset

import (
	"context"

	"github.com/pkg/errors"
)

/*
Dataset represents an ordered collection of examples.

Its Examples method returns all the examples it contains.

Its Count method returns the number of examples it contains.

Its Each method calls the given function with every example in order
until the function returns false or an error. Training is history
dependent, so every implementation must yield the examples in the
same order on every call.
*/
type Dataset interface {
	Examples(context.Context) ([]Example, error)
	Count(context.Context) (int, error)
	Each(context.Context, func(Example) (bool, error)) error
}

/*
Writer is an interface for destinations of examples. Its Write
method stores the given examples after the ones already stored and
returns the number of examples it actually stored.
*/
type Writer interface {
	Write(context.Context, []Example) (int, error)
}

type memoryDataset struct {
	examples []Example
}

/*
New takes a slice of examples and returns a dataset built with them.
*/
func New(examples []Example) Dataset {
	return &memoryDataset{examples}
}

func (s *memoryDataset) Examples(ctx context.Context) ([]Example, error) {
	return s.examples, nil
}

func (s *memoryDataset) Count(ctx context.Context) (int, error) {
	return len(s.examples), nil
}

func (s *memoryDataset) Each(ctx context.Context, lambda func(Example) (bool, error)) error {
	for _, e := range s.examples {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := lambda(e)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
Copy takes a context, a Writer, a Dataset, a batch size and an
optional progress function and writes every example in the dataset
onto the writer in batches of at most the given size, calling the
progress function with the number of examples written after each
batch. It returns the total number of examples written.
*/
func Copy(ctx context.Context, w Writer, s Dataset, batchSize int, progress func(int)) (int, error) {
	if batchSize <= 0 {
		batchSize = 1
	}
	var total int
	batch := make([]Example, 0, batchSize)
	flush := func() error {
		n, err := w.Write(ctx, batch)
		total += n
		if err != nil {
			return errors.Wrapf(err, "writing examples after %d", total)
		}
		if progress != nil {
			progress(n)
		}
		batch = batch[:0]
		return nil
	}
	err := s.Each(ctx, func(e Example) (bool, error) {
		batch = append(batch, e)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return false, err
			}
		}
		return true, nil
	})
	if err != nil {
		return total, err
	}
	if len(batch) > 0 {
		err = flush()
	}
	return total, err
}
