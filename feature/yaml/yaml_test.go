package yaml

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techytabbyy/Spam-Classifier/feature/text"
)

func TestReadOptions(t *testing.T) {
	o, err := ReadOptions([]byte("vectorizer:\n  stopwords: en\n  stem: true\n  min_length: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, text.Options{Lowercase: true, Stopwords: "en", Stem: true, MinLength: 2}, o)

	o, err = ReadOptions([]byte("vectorizer:\n  lowercase: false\n"))
	require.NoError(t, err)
	assert.Equal(t, text.Options{}, o)
}

func TestReadOptionsErrors(t *testing.T) {
	for _, md := range []string{
		"features:\n  a: continuous\n",
		"vectorizer: [1, 2]\n",
		"vectorizer:\n  min_length: -1\n",
		"vectorizer:\n  unknown: true\n",
		"vectorizer:\n",
		"",
	} {
		_, err := ReadOptions([]byte(md))
		assert.Error(t, err, md)
	}
}

func TestReadOptionsFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "metadata")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	expected := text.Options{Stopwords: "en", MinLength: 3}
	md, err := WriteOptions(expected)
	require.NoError(t, err)
	path := filepath.Join(dir, "metadata.yml")
	require.NoError(t, ioutil.WriteFile(path, md, 0644))

	o, err := ReadOptionsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, expected, o)

	_, err = ReadOptionsFromFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
