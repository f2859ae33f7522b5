/*
Package json reads and writes trees as JSON documents.

A tree is serialized as a JSON object with a "nodes" field holding an
array with its nodes in pre-order, the same order the text format
uses, each node encoded by a NodeEncodeDecoder:

	{"nodes":[{"f":"free","t":0.5},{"l":"ham"},{"l":"spam"}]}
*/
package json

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/tree"
)

/*
WriteJSONTree takes the root of a tree, a NodeEncodeDecoder and an
io.Writer and serializes the given tree as JSON onto the io.Writer.
An error is returned if the tree cannot be traversed, serialized or
written onto the io.Writer.
*/
func WriteJSONTree(root tree.Node, ned NodeEncodeDecoder, w io.Writer) error {
	_, err := w.Write([]byte(`{"nodes":[`))
	if err != nil {
		return err
	}
	var i int
	err = tree.Walk(root, func(n tree.Node) error {
		err := writeNode(i, n, ned, w)
		i++
		return err
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("]}\n"))
	return err
}

/*
ReadJSONTree takes an io.Reader and a NodeEncodeDecoder and
unmarshals the contents of the io.Reader into a tree, returning its
root. An error wrapping tree.ErrInvalidArgument is returned if the
nodes do not make up exactly one complete tree.
*/
func ReadJSONTree(r io.Reader, ned NodeEncodeDecoder) (tree.Node, error) {
	dec := json.NewDecoder(r)
	jt := &struct {
		Nodes []json.RawMessage `json:"nodes"`
	}{}
	err := dec.Decode(jt)
	if err != nil {
		return nil, errors.Wrap(err, "decoding json tree")
	}
	if len(jt.Nodes) == 0 {
		return nil, errors.Wrap(tree.ErrInvalidArgument, "json tree has no nodes")
	}
	root, next, err := buildSubtree(jt.Nodes, 0, ned)
	if err != nil {
		return nil, err
	}
	if next != len(jt.Nodes) {
		return nil, errors.Wrapf(tree.ErrInvalidArgument, "json tree has %d nodes after the complete tree", len(jt.Nodes)-next)
	}
	return root, nil
}

func buildSubtree(nodes []json.RawMessage, i int, ned NodeEncodeDecoder) (tree.Node, int, error) {
	if i >= len(nodes) {
		return nil, i, errors.Wrap(tree.ErrInvalidArgument, "json tree ends before its last subtree")
	}
	n, err := ned.Decode(nodes[i])
	if err != nil {
		return nil, i, errors.Wrapf(err, "decoding node %d", i)
	}
	d, ok := n.(*tree.Decision)
	if !ok {
		return n, i + 1, nil
	}
	d.Left, i, err = buildSubtree(nodes, i+1, ned)
	if err != nil {
		return nil, i, err
	}
	d.Right, i, err = buildSubtree(nodes, i, ned)
	if err != nil {
		return nil, i, err
	}
	return d, i, nil
}

func writeNode(i int, n tree.Node, ned NodeEncodeDecoder, w io.Writer) error {
	if i != 0 {
		_, err := w.Write([]byte(","))
		if err != nil {
			return err
		}
	}
	jn, err := ned.Encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return err
}
