/*
Package text reads and writes trees in a line-oriented text format.

Nodes are written in pre-order, a node before its left subtree and its
left subtree before its right subtree. A decision node takes two lines:

	Feature: <feature name>
	Threshold: <threshold>

and a leaf takes a single line with its label. There are no other
markers: the shape of the tree is recovered because every decision
node is immediately followed by its complete left and right subtrees.
*/
package text

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/tree"
)

const (
	featurePrefix   = "Feature:"
	thresholdPrefix = "Threshold:"
)

/*
ParseError is the error returned when the text being read does not
describe a tree. Line is the number of the line (starting at 1) where
the reader expected something it could not find.
*/
type ParseError struct {
	Line int
	Msg  string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", pe.Line, pe.Msg)
}

// IsParseError returns whether the cause of the given error is a
// *ParseError.
func IsParseError(err error) bool {
	_, ok := errors.Cause(err).(*ParseError)
	return ok
}

/*
Write takes an io.Writer and the root of a tree and writes the tree
onto the writer. It returns an error wrapping tree.ErrInvalidArgument
if a label or feature cannot be represented in the format (labels
with line breaks or starting with "Feature:", features with line
breaks) or the error of the writer if it fails.
*/
func Write(w io.Writer, root tree.Node) error {
	bw := bufio.NewWriter(w)
	err := tree.Walk(root, func(n tree.Node) error {
		switch n := n.(type) {
		case *tree.Label:
			if strings.ContainsAny(n.Label, "\r\n") || strings.HasPrefix(n.Label, featurePrefix) {
				return errors.Wrapf(tree.ErrInvalidArgument, "label %q cannot be written", n.Label)
			}
			_, err := fmt.Fprintln(bw, n.Label)
			return err
		case *tree.Decision:
			if strings.ContainsAny(n.Feature, "\r\n") {
				return errors.Wrapf(tree.ErrInvalidArgument, "feature %q cannot be written", n.Feature)
			}
			_, err := fmt.Fprintf(bw, "%s %s\n%s %s\n", featurePrefix, n.Feature, thresholdPrefix, FormatThreshold(n.Threshold))
			return err
		}
		return errors.Wrapf(tree.ErrInvalidState, "unknown node type %T", n)
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

/*
Read takes an io.Reader and reads a tree from it, returning its root.
A *ParseError is returned when the content is empty, ends before the
tree is complete, has a decision node without a valid threshold line
or has content after the complete tree. Errors reading from the
reader are returned as they are.
*/
func Read(r io.Reader) (tree.Node, error) {
	tr := &reader{scanner: bufio.NewScanner(r)}
	tr.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	root, err := tr.node()
	if err != nil {
		return nil, err
	}
	for {
		line, ok, err := tr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, &ParseError{tr.line, "unexpected content after complete tree"}
		}
	}
	return root, nil
}

type reader struct {
	scanner *bufio.Scanner
	line    int
}

func (tr *reader) next() (string, bool, error) {
	if !tr.scanner.Scan() {
		return "", false, tr.scanner.Err()
	}
	tr.line++
	return strings.TrimSuffix(tr.scanner.Text(), "\r"), true, nil
}

func (tr *reader) node() (tree.Node, error) {
	line, ok, err := tr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{tr.line + 1, "unexpected end of input, expected a node"}
	}
	if !strings.HasPrefix(line, featurePrefix) {
		return &tree.Label{Label: line}, nil
	}
	d := &tree.Decision{Feature: strings.TrimPrefix(strings.TrimPrefix(line, featurePrefix), " ")}
	line, ok, err = tr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{tr.line + 1, fmt.Sprintf("unexpected end of input, expected threshold for feature %q", d.Feature)}
	}
	if !strings.HasPrefix(line, thresholdPrefix) {
		return nil, &ParseError{tr.line, fmt.Sprintf("expected threshold for feature %q, got %q", d.Feature, line)}
	}
	d.Threshold, err = strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, thresholdPrefix)), 64)
	if err != nil {
		return nil, &ParseError{tr.line, fmt.Sprintf("parsing threshold: %v", err)}
	}
	d.Left, err = tr.node()
	if err != nil {
		return nil, err
	}
	d.Right, err = tr.node()
	if err != nil {
		return nil, err
	}
	return d, nil
}

/*
FormatThreshold returns the shortest representation of the given
threshold that parses back to exactly the same float64.
*/
func FormatThreshold(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}
