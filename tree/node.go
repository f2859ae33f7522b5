package tree

import (
	"fmt"

	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
Node is a node of the tree. It is either a *Label, a leaf holding the
outcome of a classification, or a *Decision, a branching node that
compares a feature of the classified vector against a threshold.
*/
type Node interface {
	node()
}

/*
Label is a leaf of the tree.
*/
type Label struct {
	// The label assigned to vectors reaching the leaf
	Label string
	// The training vector that produced the leaf. It is only needed to
	// split the leaf later on, so trees loaded from storage have none.
	Exemplar feature.Vector
}

/*
Decision is a branching node of the tree. Vectors whose value for
Feature is lower than Threshold continue through Left, the rest
continue through Right.
*/
type Decision struct {
	Feature   string
	Threshold float64
	Left      Node
	Right     Node
}

func (*Label) node()    {}
func (*Decision) node() {}

func (l *Label) String() string {
	return l.Label
}

func (d *Decision) String() string {
	return fmt.Sprintf("%s < %g", d.Feature, d.Threshold)
}
