/*
Package model defines stores where trained classifiers can be kept
under a name and retrieved later, possibly by another process.

Stores keep classifiers serialized by a Codec, so a classifier
retrieved from a store never shares its tree with the one that was
put, and, like any loaded classifier, its leaves have no exemplars.
*/
package model

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	classifier "github.com/techytabbyy/Spam-Classifier"
	"github.com/techytabbyy/Spam-Classifier/tree"
	treejson "github.com/techytabbyy/Spam-Classifier/tree/json"
)

// Error represents an error related with model stores
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrModelNotFound is the error returned by the Get and Delete methods
of a store when there is no model with the given name.
*/
const ErrModelNotFound = Error("model not found")

/*
Store is an interface to manage a store
where named classifiers can be put, retrieved and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Put takes a name and a classifier and stores the
	// classifier under the name, replacing any classifier
	// previously stored with it.
	Put(ctx context.Context, name string, c *classifier.Classifier) error
	// Get takes a name and returns the classifier stored
	// under it, or ErrModelNotFound.
	Get(ctx context.Context, name string) (*classifier.Classifier, error)
	// Delete takes a name and removes the classifier stored
	// under it, or returns ErrModelNotFound.
	Delete(ctx context.Context, name string) error
	// Close closes the store, freeing any resources in use.
	Close(ctx context.Context) error
}

/*
Codec is an interface for objects that allow encoding classifiers
into slices of bytes and decoding them back.
*/
type Codec interface {
	Encode(*classifier.Classifier) ([]byte, error)
	Decode([]byte) (*classifier.Classifier, error)
}

type textCodec struct{}

// TextCodec encodes classifiers in the text format of Save and Load
var TextCodec Codec = textCodec{}

func (textCodec) Encode(c *classifier.Classifier) ([]byte, error) {
	var buf bytes.Buffer
	err := c.Save(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (textCodec) Decode(data []byte) (*classifier.Classifier, error) {
	return classifier.Load(bytes.NewReader(data))
}

type jsonCodec struct {
	ned treejson.NodeEncodeDecoder
}

// JSONCodec encodes classifiers as JSON trees
var JSONCodec Codec = jsonCodec{treejson.NewNodeEncodeDecoder()}

func (jc jsonCodec) Encode(c *classifier.Classifier) ([]byte, error) {
	if c.Root() == nil {
		return nil, errors.Wrap(tree.ErrInvalidState, "encoding classifier without tree")
	}
	var buf bytes.Buffer
	err := treejson.WriteJSONTree(c.Root(), jc.ned, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (jc jsonCodec) Decode(data []byte) (*classifier.Classifier, error) {
	root, err := treejson.ReadJSONTree(bytes.NewReader(data), jc.ned)
	if err != nil {
		return nil, err
	}
	return classifier.FromRoot(root), nil
}
