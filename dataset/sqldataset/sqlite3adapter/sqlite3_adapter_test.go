package sqlite3adapter

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/dataset/sqldataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

func newDataset(t *testing.T) (*sqldataset.Dataset, func()) {
	dir, err := ioutil.TempDir("", "sqlite3adapter")
	require.NoError(t, err)
	a, err := New(filepath.Join(dir, "examples.db"))
	require.NoError(t, err)
	ds, err := sqldataset.New(context.Background(), a)
	require.NoError(t, err)
	return ds, func() {
		ds.Close()
		os.RemoveAll(dir)
	}
}

func TestWriteAndIterate(t *testing.T) {
	ctx := context.Background()
	ds, cleanup := newDataset(t)
	defer cleanup()

	many := make([]feature.Probability, 0, 250)
	for i := 0; i < 250; i++ {
		many = append(many, feature.Probability{Name: fmt.Sprintf("w%03d", 249-i), Value: float64(i) / 250})
	}
	examples := []dataset.Example{
		{Vector: feature.New(feature.Probability{Name: "win", Value: 0.5}, feature.Probability{Name: "cash", Value: 0.1 + 0.2}), Label: "spam"},
		{Vector: feature.New(), Label: "empty"},
		{Vector: feature.New(many...), Label: "ham"},
	}
	n, err := ds.Write(ctx, examples[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = ds.Write(ctx, examples[2:])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := ds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	read, err := ds.Examples(ctx)
	require.NoError(t, err)
	require.Len(t, read, 3)
	for i, e := range examples {
		assert.Equal(t, e.Label, read[i].Label)
		assert.Equal(t, feature.Probabilities(e.Vector), feature.Probabilities(read[i].Vector))
	}

	var labels []string
	err = ds.Each(ctx, func(e dataset.Example) (bool, error) {
		labels = append(labels, e.Label)
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"spam"}, labels)
}

func TestCopyIntoDataset(t *testing.T) {
	ctx := context.Background()
	ds, cleanup := newDataset(t)
	defer cleanup()

	source := dataset.New([]dataset.Example{
		{Vector: feature.New(feature.Probability{Name: "a", Value: 0.1}), Label: "x"},
		{Vector: feature.New(feature.Probability{Name: "b", Value: 0.2}), Label: "y"},
		{Vector: feature.New(feature.Probability{Name: "c", Value: 0.3}), Label: "z"},
	})
	n, err := dataset.Copy(ctx, ds, source, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	count, err := ds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
