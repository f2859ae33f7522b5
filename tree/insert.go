package tree

import (
	"math"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
Insert takes the root of a (sub)tree, a vector and its label and folds
the labeled example into the tree, returning the root of the resulting
(sub)tree.

The example is routed down the tree as Classify would, except that
vectors lacking the feature of a decision node always continue on its
left branch. Once a leaf is reached:
  * if it has the same label, the tree is left unchanged
  * otherwise the leaf is replaced by a decision node on the feature that
  differs the most between the example and the leaf's exemplar, with the
  midpoint of their values as threshold, and the leaf and a new leaf for
  the example as its children.
An empty tree (nil root) becomes a single leaf for the example.

Earlier decisions are never revisited. When an error is returned the
tree has not been modified.
*/
func Insert(root Node, data feature.Vector, label string) (Node, error) {
	return InsertNotifying(root, data, label, nil)
}

/*
InsertNotifying works like Insert but, when the example splits a leaf,
calls onSplit with the new decision node once the split is done.
*/
func InsertNotifying(root Node, data feature.Vector, label string, onSplit func(*Decision)) (Node, error) {
	if data == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "inserting nil vector")
	}
	var split *Decision
	n, err := insert(root, data, label, &split)
	if err != nil {
		return nil, err
	}
	if split != nil && onSplit != nil {
		onSplit(split)
	}
	return n, nil
}

func insert(root Node, data feature.Vector, label string, split **Decision) (Node, error) {
	switch n := root.(type) {
	case nil:
		return &Label{Label: label, Exemplar: data}, nil
	case *Label:
		if n.Label == label {
			return n, nil
		}
		d, err := splitLeaf(n, data, label)
		if err != nil {
			return nil, err
		}
		*split = d
		return d, nil
	case *Decision:
		value, ok := data.Value(n.Feature)
		if !ok || value < n.Threshold {
			left, err := insert(n.Left, data, label, split)
			if err != nil {
				return nil, err
			}
			n.Left = left
		} else {
			right, err := insert(n.Right, data, label, split)
			if err != nil {
				return nil, err
			}
			n.Right = right
		}
		return n, nil
	}
	return nil, errors.Wrapf(ErrInvalidState, "unknown node type %T", root)
}

func splitLeaf(leaf *Label, data feature.Vector, label string) (*Decision, error) {
	if leaf.Exemplar == nil {
		return nil, errors.Wrapf(ErrInvalidState, "splitting leaf %q: leaf has no exemplar", leaf.Label)
	}
	f, err := data.MostDifferingFeature(leaf.Exemplar)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "splitting leaf %q for label %q: %v", leaf.Label, label, err)
	}
	value, _ := data.Value(f)
	exemplarValue, _ := leaf.Exemplar.Value(f)
	d := &Decision{Feature: f, Threshold: Midpoint(value, exemplarValue)}
	newLeaf := &Label{Label: label, Exemplar: data}
	if value < d.Threshold {
		d.Left, d.Right = newLeaf, leaf
	} else {
		d.Left, d.Right = leaf, newLeaf
	}
	return d, nil
}

/*
Midpoint returns the value halfway between a and b.
*/
func Midpoint(a, b float64) float64 {
	return math.Min(a, b) + math.Abs(a-b)/2.0
}
