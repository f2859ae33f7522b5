/*
Package csv reads labeled text corpora from CSV streams.

The header or first row of the CSV content must name a "label" column
and a "text" column, in any order. Other columns are ignored. Every
other row is an example whose text is turned into a feature vector
with a Vectorizer.
*/
package csv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

const (
	labelColumn = "label"
	textColumn  = "text"
)

// Vectorizer turns a text into a feature vector
type Vectorizer interface {
	Vectorize(string) (feature.Vector, error)
}

/*
ReadDataset takes an io.Reader for a CSV stream and a Vectorizer and
returns an in-memory dataset.Dataset with the examples parsed from
the reader, or an error.
*/
func ReadDataset(reader io.Reader, v Vectorizer) (dataset.Dataset, error) {
	examples := []dataset.Example{}
	err := ReadDatasetByExample(reader, v, func(_ int, e dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(examples), nil
}

/*
ReadDatasetByExample takes an io.Reader for a CSV stream, a Vectorizer
and a lambda function on an integer and a dataset.Example that returns
a boolean value. It parses the examples from the reader and for each
it calls the lambda function with its index and the example. If the
lambda function returns true, it will continue processing the next
example, otherwise it will stop. An error is returned if something
goes wrong when reading the stream or vectorizing a text.
*/
func ReadDatasetByExample(reader io.Reader, v Vectorizer, lambda func(int, dataset.Example) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return errors.Wrap(err, "reading header")
	}
	labelIndex, textIndex, err := parseHeader(header)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading body")
		}
		if len(row) <= labelIndex || len(row) <= textIndex {
			return errors.Errorf("line %d has %d columns, expected at least %d", l, len(row), maxInt(labelIndex, textIndex)+1)
		}
		vector, err := v.Vectorize(row[textIndex])
		if err != nil {
			return errors.Wrapf(err, "vectorizing text on line %d", l)
		}
		ok, err := lambda(l-2, dataset.Example{Vector: vector, Label: row[labelIndex]})
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
ReadDatasetFromFilePath takes a filepath string and a Vectorizer, opens
the file to which the filepath points (os.Stdin if it is "") and uses
ReadDataset to return the dataset.Dataset read from it or an error.
*/
func ReadDatasetFromFilePath(filepath string, v Vectorizer) (dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "reading dataset")
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, v)
	if err != nil {
		err = errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return ds, err
}

func parseHeader(header []string) (int, int, error) {
	labelIndex, textIndex := -1, -1
	for i, name := range header {
		switch name {
		case labelColumn:
			if labelIndex >= 0 {
				return 0, 0, errors.Errorf("header has more than one %q column", labelColumn)
			}
			labelIndex = i
		case textColumn:
			if textIndex >= 0 {
				return 0, 0, errors.Errorf("header has more than one %q column", textColumn)
			}
			textIndex = i
		}
	}
	if labelIndex < 0 || textIndex < 0 {
		return 0, 0, errors.Errorf("header %v must include %q and %q columns", header, labelColumn, textColumn)
	}
	return labelIndex, textIndex, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
