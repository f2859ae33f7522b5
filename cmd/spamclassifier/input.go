package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/dataset/csv"
	"github.com/techytabbyy/Spam-Classifier/dataset/mongodataset"
	"github.com/techytabbyy/Spam-Classifier/dataset/sqldataset"
	"github.com/techytabbyy/Spam-Classifier/dataset/sqldataset/pgadapter"
	"github.com/techytabbyy/Spam-Classifier/dataset/sqldataset/sqlite3adapter"
	dsyaml "github.com/techytabbyy/Spam-Classifier/dataset/yaml"
	"github.com/techytabbyy/Spam-Classifier/feature/text"
	mdyaml "github.com/techytabbyy/Spam-Classifier/feature/yaml"
)

type datasetKind int

const (
	csvDataset datasetKind = iota
	yamlDataset
	sqlite3Dataset
	postgresDataset
	mongoDataset
)

func kindOf(location string) datasetKind {
	switch {
	case strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://"):
		return postgresDataset
	case strings.HasPrefix(location, "mongodb://"):
		return mongoDataset
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".db":
		return sqlite3Dataset
	case ".yml", ".yaml":
		return yamlDataset
	}
	return csvDataset
}

type datasetConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
}

func (dc *datasetConfig) vectorizer() (*text.Vectorizer, error) {
	if dc.metadataInput == "" {
		return text.NewVectorizer(text.DefaultOptions), nil
	}
	o, err := mdyaml.ReadOptionsFromFile(dc.metadataInput)
	if err != nil {
		return nil, err
	}
	return text.NewVectorizer(o), nil
}

/*
dataset opens the dataset at the configured input and returns it
along with a function to release it.
*/
func (dc *datasetConfig) dataset(ctx context.Context) (dataset.Dataset, func(), error) {
	noop := func() {}
	switch kindOf(dc.dataInput) {
	case postgresDataset:
		dc.Logf("Creating PostgreSQL adapter for url %s...", dc.dataInput)
		adapter, err := pgadapter.New(dc.dataInput)
		if err != nil {
			return nil, noop, err
		}
		ds, err := sqldataset.New(ctx, adapter)
		if err != nil {
			adapter.Close()
			return nil, noop, err
		}
		return ds, func() { ds.Close() }, nil
	case sqlite3Dataset:
		dc.Logf("Creating SQLite3 adapter for file %s...", dc.dataInput)
		adapter, err := sqlite3adapter.New(dc.dataInput)
		if err != nil {
			return nil, noop, err
		}
		ds, err := sqldataset.New(ctx, adapter)
		if err != nil {
			adapter.Close()
			return nil, noop, err
		}
		return ds, func() { ds.Close() }, nil
	case mongoDataset:
		dc.Logf("Connecting to MongoDB at %s...", dc.dataInput)
		ds, err := mongodataset.Dial(ctx, dc.dataInput)
		if err != nil {
			return nil, noop, err
		}
		return ds, func() { ds.Close() }, nil
	case yamlDataset:
		dc.Logf("Reading examples from %s...", dc.dataInput)
		ds, err := dsyaml.ReadDatasetFromFilePath(dc.dataInput)
		return ds, noop, err
	}
	v, err := dc.vectorizer()
	if err != nil {
		return nil, noop, err
	}
	if dc.dataInput == "" {
		dc.Logf("Reading examples from STDIN...")
	} else {
		dc.Logf("Reading examples from %s...", dc.dataInput)
	}
	ds, err := csv.ReadDatasetFromFilePath(dc.dataInput, v)
	return ds, noop, err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func createOutput(outputPath string) (io.WriteCloser, error) {
	if outputPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", outputPath)
	}
	return f, nil
}

/*
datasetWriter opens the dataset at the given output location for
writing and returns it along with a function to release it. YML
outputs are written to STDOUT when the location is empty.
*/
func (dc *datasetConfig) datasetWriter(ctx context.Context, output string) (dataset.Writer, func() error, error) {
	noop := func() error { return nil }
	if output == "" {
		return dsyaml.NewWriter(os.Stdout), noop, nil
	}
	switch kindOf(output) {
	case postgresDataset:
		dc.Logf("Creating PostgreSQL adapter for url %s...", output)
		adapter, err := pgadapter.New(output)
		if err != nil {
			return nil, noop, err
		}
		ds, err := sqldataset.New(ctx, adapter)
		if err != nil {
			adapter.Close()
			return nil, noop, err
		}
		return ds, ds.Close, nil
	case sqlite3Dataset:
		dc.Logf("Creating SQLite3 adapter for file %s...", output)
		adapter, err := sqlite3adapter.New(output)
		if err != nil {
			return nil, noop, err
		}
		ds, err := sqldataset.New(ctx, adapter)
		if err != nil {
			adapter.Close()
			return nil, noop, err
		}
		return ds, ds.Close, nil
	case mongoDataset:
		dc.Logf("Connecting to MongoDB at %s...", output)
		ds, err := mongodataset.Dial(ctx, output)
		if err != nil {
			return nil, noop, err
		}
		return ds, ds.Close, nil
	case yamlDataset:
		f, err := createOutput(output)
		if err != nil {
			return nil, noop, err
		}
		return dsyaml.NewWriter(f), f.Close, nil
	}
	return nil, noop, errors.Errorf("unsupported output %s: expected a .db or .yml file, or a postgresql:// or mongodb:// URL", output)
}
