package tree

import (
	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
Classify takes the root of a tree and a vector and returns the label
of the leaf the vector reaches going down from the root: at every
decision node it continues through the left branch if its value for
the node's feature is lower than the threshold, and through the right
branch otherwise.

Unlike Insert, a vector lacking the feature of a decision node on its
path cannot be classified and ErrInvalidState is returned.
*/
func Classify(root Node, input feature.Vector) (string, error) {
	if input == nil {
		return "", errors.Wrap(ErrInvalidArgument, "classifying nil vector")
	}
	n := root
	for {
		switch current := n.(type) {
		case nil:
			return "", errors.Wrap(ErrInvalidState, "classifying with an empty tree")
		case *Label:
			return current.Label, nil
		case *Decision:
			value, ok := input.Value(current.Feature)
			if !ok {
				return "", errors.Wrapf(ErrInvalidState, "vector has no value for feature %q", current.Feature)
			}
			if value < current.Threshold {
				n = current.Left
			} else {
				n = current.Right
			}
		default:
			return "", errors.Wrapf(ErrInvalidState, "unknown node type %T", n)
		}
	}
}
