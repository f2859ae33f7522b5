package yaml

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

const document = `- label: spam
  features:
    win: 0.5
    cash: 0.25
    now: 0.25
- label: ham
  features:
    meeting: 1
`

func TestReadDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(document))
	require.NoError(t, err)
	examples, err := ds.Examples(context.Background())
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, "spam", examples[0].Label)
	assert.Equal(t, []string{"win", "cash", "now"}, examples[0].Vector.Features())
	v, ok := examples[1].Vector.Value("meeting")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestReadDatasetErrors(t *testing.T) {
	for _, input := range []string{
		"label: spam\n",
		"- label: spam\n  features:\n    win: lots\n",
		"- label: spam\n  weight: 2\n",
	} {
		_, err := ReadDataset(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	examples := []dataset.Example{
		{Vector: feature.New(feature.Probability{Name: "zeta", Value: 0.1 + 0.2}, feature.Probability{Name: "alpha", Value: 0.7}), Label: "spam"},
		{Vector: feature.New(feature.Probability{Name: "hello", Value: 1}), Label: "ham"},
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	n, err := w.Write(context.Background(), examples[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = w.Write(context.Background(), examples[1:])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ds, err := ReadDataset(&buf)
	require.NoError(t, err)
	read, err := ds.Examples(context.Background())
	require.NoError(t, err)
	require.Len(t, read, 2)
	for i := range examples {
		assert.Equal(t, examples[i].Label, read[i].Label)
		assert.Equal(t, feature.Probabilities(examples[i].Vector), feature.Probabilities(read[i].Vector))
	}
}
