package json

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/tree"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding single nodes into slices of
bytes and decoding them back to nodes.
*/
type NodeEncodeDecoder interface {

	//Encode receives a tree.Node and returns a slice
	//of bytes with the node (but not its subtrees)
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(tree.Node) ([]byte, error)

	//Decode receives a slice of bytes and returns
	//a tree.Node decoded from it, without subtrees,
	//or an error if the decoding could not be
	//performed for some reason.
	Decode([]byte) (tree.Node, error)
}

type nodeEncodeDecoder struct{}

type node struct {
	Label     *string  `json:"l,omitempty"`
	Feature   *string  `json:"f,omitempty"`
	Threshold *float64 `json:"t,omitempty"`
}

/*
NewNodeEncodeDecoder returns a NodeEncodeDecoder that encodes
leaves as JSON objects with an "l" field holding the label and
decision nodes as JSON objects with an "f" field holding the
feature and a "t" field holding the threshold.
*/
func NewNodeEncodeDecoder() NodeEncodeDecoder {
	return nodeEncodeDecoder{}
}

func (nodeEncodeDecoder) Encode(n tree.Node) ([]byte, error) {
	jn := &node{}
	switch n := n.(type) {
	case *tree.Label:
		jn.Label = &n.Label
	case *tree.Decision:
		jn.Feature = &n.Feature
		jn.Threshold = &n.Threshold
	default:
		return nil, errors.Wrapf(tree.ErrInvalidArgument, "encoding node of type %T", n)
	}
	return json.Marshal(jn)
}

func (nodeEncodeDecoder) Decode(data []byte) (tree.Node, error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling node")
	}
	switch {
	case jn.Feature != nil && jn.Label == nil:
		if jn.Threshold == nil {
			return nil, errors.Wrapf(tree.ErrInvalidArgument, "decision node on feature %q has no threshold", *jn.Feature)
		}
		return &tree.Decision{Feature: *jn.Feature, Threshold: *jn.Threshold}, nil
	case jn.Label != nil && jn.Feature == nil:
		return &tree.Label{Label: *jn.Label}, nil
	}
	return nil, errors.Wrapf(tree.ErrInvalidArgument, "node %s is neither a leaf nor a decision", data)
}
