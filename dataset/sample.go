package dataset

import (
	"fmt"

	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
Example represents an item from which to learn: a feature vector
and the label it is known to have.
*/
type Example struct {
	Vector feature.Vector
	Label  string
}

func (e Example) String() string {
	return fmt.Sprintf("%s %v", e.Label, e.Vector)
}

/*
Split takes a slice of examples and returns the slice of their
vectors and the slice of their labels, both in the same order as
the examples.
*/
func Split(examples []Example) ([]feature.Vector, []string) {
	vectors := make([]feature.Vector, 0, len(examples))
	labels := make([]string, 0, len(examples))
	for _, e := range examples {
		vectors = append(vectors, e.Vector)
		labels = append(labels, e.Label)
	}
	return vectors, labels
}
