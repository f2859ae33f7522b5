/*
Package classifier implements an online binary decision tree that
predicts a label, such as "spam" or "ham", for items represented as
feature vectors.

A Classifier is trained by folding labeled examples into its tree one
at a time: an example that reaches a leaf with a different label
splits that leaf on the feature on which the example and the leaf's
exemplar differ the most. Trained trees can be saved and loaded back
in a pre-order text format.
*/
package classifier

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
	"github.com/techytabbyy/Spam-Classifier/tree"
	"github.com/techytabbyy/Spam-Classifier/tree/text"
	"go.uber.org/zap"
)

// Classifier predicts labels for feature vectors with a decision
// tree it owns exclusively.
type Classifier struct {
	root   tree.Node
	logger *zap.SugaredLogger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger makes the classifier log its tree growth on the given
// logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newClassifier(opts []Option) *Classifier {
	c := &Classifier{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

/*
New takes a slice of vectors and a slice with their labels and
returns a Classifier trained with every pair in order. An error
wrapping tree.ErrInvalidArgument is returned if either slice is nil
or empty, if their lengths differ or if a pair cannot be folded into
the tree, in which case no Classifier is returned.
*/
func New(data []feature.Vector, labels []string, opts ...Option) (*Classifier, error) {
	if data == nil || labels == nil {
		return nil, errors.Wrap(tree.ErrInvalidArgument, "neither data nor labels can be nil")
	}
	if len(data) != len(labels) {
		return nil, errors.Wrapf(tree.ErrInvalidArgument, "got %d vectors but %d labels", len(data), len(labels))
	}
	if len(data) == 0 {
		return nil, errors.Wrap(tree.ErrInvalidArgument, "neither data nor labels can be empty")
	}
	c := newClassifier(opts)
	for i, v := range data {
		err := c.Train(v, labels[i])
		if err != nil {
			return nil, errors.Wrapf(err, "training with example %d", i)
		}
	}
	return c, nil
}

/*
NewFromDataset takes a context and a dataset and returns a Classifier
trained with every example of the dataset in order. The optional
progress function is called after each example is folded into the
tree. An error is returned if the dataset is empty, cannot be
iterated or an example cannot be folded into the tree.
*/
func NewFromDataset(ctx context.Context, ds dataset.Dataset, progress func(), opts ...Option) (*Classifier, error) {
	c := newClassifier(opts)
	var i int
	err := ds.Each(ctx, func(e dataset.Example) (bool, error) {
		err := c.Train(e.Vector, e.Label)
		if err != nil {
			return false, errors.Wrapf(err, "training with example %d", i)
		}
		i++
		if progress != nil {
			progress()
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if c.root == nil {
		return nil, errors.Wrap(tree.ErrInvalidArgument, "training dataset has no examples")
	}
	return c, nil
}

/*
Load takes an io.Reader and returns a Classifier with the tree read
from it in the text format. It returns an error wrapping
tree.ErrInvalidArgument if the reader is nil and a *text.ParseError
if the content is not a valid tree.
*/
func Load(r io.Reader, opts ...Option) (*Classifier, error) {
	if r == nil {
		return nil, errors.Wrap(tree.ErrInvalidArgument, "input cannot be nil")
	}
	root, err := text.Read(r)
	if err != nil {
		return nil, errors.Wrap(err, "loading classifier")
	}
	c := newClassifier(opts)
	c.root = root
	return c, nil
}

/*
FromRoot returns a Classifier that owns the tree with the given root.
The caller must not modify the tree afterwards.
*/
func FromRoot(root tree.Node, opts ...Option) *Classifier {
	c := newClassifier(opts)
	c.root = root
	return c
}

/*
Train folds a single labeled vector into the tree of the classifier.
If the vector cannot be folded the tree is left as it was and the
error is returned.
*/
func (c *Classifier) Train(v feature.Vector, label string) error {
	planting := c.root == nil
	root, err := tree.InsertNotifying(c.root, v, label, func(d *tree.Decision) {
		c.logger.Debugw("Split leaf", "feature", d.Feature, "threshold", d.Threshold, "label", label)
	})
	if err != nil {
		return err
	}
	c.root = root
	if planting {
		c.logger.Debugw("Planted tree", "label", label)
	}
	return nil
}

/*
Classify takes a vector and returns the label predicted for it. It
returns an error wrapping tree.ErrInvalidArgument if the vector is
nil and one wrapping tree.ErrInvalidState if the classifier has no
tree or the vector lacks a feature the tree decides on.
*/
func (c *Classifier) Classify(v feature.Vector) (string, error) {
	return tree.Classify(c.root, v)
}

/*
Save takes an io.Writer and writes the tree of the classifier onto it
in the text format Load reads.
*/
func (c *Classifier) Save(w io.Writer) error {
	if w == nil {
		return errors.Wrap(tree.ErrInvalidArgument, "output cannot be nil")
	}
	if c.root == nil {
		return errors.Wrap(tree.ErrInvalidState, "saving classifier without tree")
	}
	return text.Write(w, c.root)
}

// Root returns the root of the classifier's tree
func (c *Classifier) Root() tree.Node {
	return c.root
}

func (c *Classifier) String() string {
	return tree.String(c.root)
}
