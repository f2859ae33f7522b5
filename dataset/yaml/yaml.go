/*
Package yaml reads and writes datasets of explicit feature vectors as
YAML documents: a list of examples, each an object with a label
property and a features property mapping feature names to
probabilities. The order of the features is kept.

	- label: spam
	  features:
	    cash: 0.5
	    win: 0.25
*/
package yaml

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
	yaml "gopkg.in/yaml.v2"
)

type example struct {
	Label    string        `yaml:"label"`
	Features yaml.MapSlice `yaml:"features"`
}

/*
ReadDataset takes an io.Reader with a YAML document and returns an
in-memory dataset.Dataset with the examples in it or an error.
*/
func ReadDataset(r io.Reader) (dataset.Dataset, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading yml dataset")
	}
	yExamples := []example{}
	err = yaml.UnmarshalStrict(content, &yExamples)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml dataset")
	}
	examples := make([]dataset.Example, 0, len(yExamples))
	for i, ye := range yExamples {
		e, err := ye.toExample()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing example %d", i)
		}
		examples = append(examples, e)
	}
	return dataset.New(examples), nil
}

/*
ReadDatasetFromFilePath takes a filepath string, opens the file to
which it points (os.Stdin if it is "") and uses ReadDataset to return
the dataset.Dataset read from it or an error.
*/
func ReadDatasetFromFilePath(filepath string) (dataset.Dataset, error) {
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
	ds, err := ReadDataset(f)
	if err != nil {
		err = errors.Wrapf(err, "parsing YAML file %s", filepath)
	}
	return ds, err
}

func (ye example) toExample() (dataset.Example, error) {
	probs := make([]feature.Probability, 0, len(ye.Features))
	for _, item := range ye.Features {
		var value float64
		switch v := item.Value.(type) {
		case int:
			value = float64(v)
		case float64:
			value = v
		default:
			return dataset.Example{}, errors.Errorf("feature %v has non-numeric value %v", item.Key, item.Value)
		}
		probs = append(probs, feature.Probability{Name: fmt.Sprintf("%v", item.Key), Value: value})
	}
	return dataset.Example{Vector: feature.New(probs...), Label: ye.Label}, nil
}

type writer struct {
	w io.Writer
}

/*
NewWriter takes an io.Writer and returns a dataset.Writer that writes
the examples onto it as a YAML list that ReadDataset can read.
*/
func NewWriter(w io.Writer) dataset.Writer {
	return &writer{w}
}

func (yw *writer) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	for i, e := range examples {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		ye := example{Label: e.Label}
		if e.Vector != nil {
			for _, p := range feature.Probabilities(e.Vector) {
				ye.Features = append(ye.Features, yaml.MapItem{Key: p.Name, Value: p.Value})
			}
		}
		content, err := yaml.Marshal([]example{ye})
		if err != nil {
			return i, errors.Wrapf(err, "marshalling example with label %q", e.Label)
		}
		_, err = yw.w.Write(content)
		if err != nil {
			return i, err
		}
	}
	return len(examples), nil
}
