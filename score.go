package classifier

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
	"github.com/techytabbyy/Spam-Classifier/tree"
)

// Overall is the Accuracy key holding the ratio of all the examples
// that were classified correctly.
const Overall = "Overall"

/*
Accuracy maps labels to the ratio of examples with that label that
were classified correctly, and Overall to the ratio of all examples
classified correctly.

Only labels that were predicted correctly at least once have a key.
*/
type Accuracy map[string]float64

// Labels returns the keys of the accuracy in lexicographical order
// with Overall last.
func (a Accuracy) Labels() []string {
	labels := make([]string, 0, len(a))
	for l := range a {
		if l != Overall {
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)
	if _, ok := a[Overall]; ok {
		labels = append(labels, Overall)
	}
	return labels
}

type tally struct {
	total   map[string]int
	correct map[string]float64
}

func newTally() *tally {
	return &tally{
		total:   map[string]int{Overall: 0},
		correct: map[string]float64{Overall: 0},
	}
}

func (t *tally) add(expected, predicted string) {
	t.total[expected]++
	t.total[Overall]++
	if predicted == expected {
		t.correct[predicted]++
		t.correct[Overall]++
	}
}

func (t *tally) accuracy() Accuracy {
	result := make(Accuracy, len(t.correct))
	for label, correct := range t.correct {
		if total := t.total[label]; total > 0 {
			result[label] = correct / float64(total)
		} else {
			result[label] = 0
		}
	}
	return result
}

/*
Score takes a slice of vectors and a slice with their expected labels,
classifies every vector and returns the resulting Accuracy. It returns
an error wrapping tree.ErrInvalidArgument if the slices have different
lengths, or the error of the first vector that cannot be classified.
*/
func (c *Classifier) Score(data []feature.Vector, labels []string) (Accuracy, error) {
	if len(data) != len(labels) {
		return nil, errors.Wrapf(tree.ErrInvalidArgument, "length of data (%d) does not match labels (%d)", len(data), len(labels))
	}
	t := newTally()
	for i, v := range data {
		predicted, err := c.Classify(v)
		if err != nil {
			return nil, errors.Wrapf(err, "classifying example %d", i)
		}
		t.add(labels[i], predicted)
	}
	return t.accuracy(), nil
}

/*
ScoreDataset takes a context and a dataset and returns the Accuracy of
the classifier on its examples, as Score does. The optional progress
function is called after each example is classified.
*/
func (c *Classifier) ScoreDataset(ctx context.Context, ds dataset.Dataset, progress func()) (Accuracy, error) {
	t := newTally()
	var i int
	err := ds.Each(ctx, func(e dataset.Example) (bool, error) {
		predicted, err := c.Classify(e.Vector)
		if err != nil {
			return false, errors.Wrapf(err, "classifying example %d", i)
		}
		t.add(e.Label, predicted)
		i++
		if progress != nil {
			progress()
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return t.accuracy(), nil
}
