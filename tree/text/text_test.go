package text

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techytabbyy/Spam-Classifier/tree"
)

func sampleTree() tree.Node {
	return &tree.Decision{
		Feature:   "free",
		Threshold: 0.1 + 0.2,
		Left: &tree.Decision{
			Feature:   "meeting",
			Threshold: 1e-5,
			Left:      &tree.Label{Label: "spam"},
			Right:     &tree.Label{Label: "ham"},
		},
		Right: &tree.Label{Label: "spam"},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTree()))
	expected := strings.Join([]string{
		"Feature: free",
		"Threshold: 0.30000000000000004",
		"Feature: meeting",
		"Threshold: 1e-05",
		"spam",
		"ham",
		"spam",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := sampleTree()
	require.NoError(t, Write(&buf, original))
	read, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, read)

	d := read.(*tree.Decision)
	assert.Equal(t, math.Float64bits(0.1+0.2), math.Float64bits(d.Threshold))
}

func TestReadSingleLabel(t *testing.T) {
	n, err := Read(strings.NewReader("ham\n"))
	require.NoError(t, err)
	assert.Equal(t, &tree.Label{Label: "ham"}, n)
}

func TestReadJavaStyleDoublesAndCRLF(t *testing.T) {
	n, err := Read(strings.NewReader("Feature: win\r\nThreshold: 1.0E-5\r\nham\r\nspam\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, &tree.Decision{
		Feature:   "win",
		Threshold: 1e-5,
		Left:      &tree.Label{Label: "ham"},
		Right:     &tree.Label{Label: "spam"},
	}, n)
}

func TestReadMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		line  int
	}{
		{"empty input", "", 1},
		{"missing threshold line", "Feature: a\n", 2},
		{"threshold line is a label", "Feature: a\nham\nspam\nham\n", 2},
		{"unparseable threshold", "Feature: a\nThreshold: half\nham\nspam\n", 2},
		{"missing right subtree", "Feature: a\nThreshold: 0.5\nham\n", 4},
		{"missing both subtrees", "Feature: a\nThreshold: 0.5\n", 3},
		{"content after the tree", "ham\nspam\n", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			require.Error(t, err)
			pe, ok := errors.Cause(err).(*ParseError)
			require.True(t, ok, "expected a *ParseError, got %T", err)
			assert.Equal(t, tc.line, pe.Line)
			assert.True(t, IsParseError(errors.Wrap(err, "loading")))
		})
	}
}

func TestWriteRejectsUnreadableLabels(t *testing.T) {
	for _, root := range []tree.Node{
		&tree.Label{Label: "two\nlines"},
		&tree.Label{Label: "Feature: sneaky"},
		&tree.Decision{Feature: "bad\nfeature", Left: &tree.Label{Label: "a"}, Right: &tree.Label{Label: "b"}},
	} {
		var buf bytes.Buffer
		err := Write(&buf, root)
		assert.Equal(t, tree.ErrInvalidArgument, errors.Cause(err))
	}
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "0.5", FormatThreshold(0.5))
	assert.Equal(t, "1", FormatThreshold(1))
	assert.Equal(t, "-0.25", FormatThreshold(-0.25))
}
