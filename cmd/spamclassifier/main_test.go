package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `label,text
ham,hello friend hello
spam,hello money money money
`

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func writeCorpus(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))
	return dir, path
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "spamclassifier v0.1.0\n", execute(t, "version"))
}

func TestTrainClassifyAndTest(t *testing.T) {
	dir, input := writeCorpus(t)
	treePath := filepath.Join(dir, "tree.txt")
	execute(t, "train", "-i", input, "-o", treePath)

	data, err := os.ReadFile(treePath)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Feature: hello", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Threshold: 0.458"))
	assert.Equal(t, []string{"spam", "ham", ""}, lines[2:])

	assert.Equal(t, "spam\n", execute(t, "classify", "-t", treePath, "hello", "money", "money"))
	assert.Equal(t, "ham\n", execute(t, "classify", "-t", treePath, "Hello hello friend"))

	assert.Equal(t, "ham: 1.0000\nspam: 1.0000\nOverall: 1.0000\n", execute(t, "test", "-t", treePath, "-i", input))
}

func TestClassifyReadsStdin(t *testing.T) {
	dir, input := writeCorpus(t)
	treePath := filepath.Join(dir, "tree.json")
	execute(t, "train", "-i", input, "-o", treePath)

	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("hello money money\n"))
	cmd.SetArgs([]string{"classify", "-t", treePath})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "spam\n", out.String())
}

func TestTrainIntoDirectoryStore(t *testing.T) {
	dir, input := writeCorpus(t)
	treePath := filepath.Join(dir, "tree.txt")
	storeDir := filepath.Join(dir, "models")
	execute(t, "train", "-i", input, "-o", treePath)
	execute(t, "train", "-i", input, "-s", storeDir, "--model", "mail")

	expected, err := os.ReadFile(treePath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), execute(t, "tree", "-s", storeDir, "--model", "mail", "-f", "text"))
	assert.Equal(t, "spam\n", execute(t, "classify", "-s", storeDir, "--model", "mail", "hello money money"))
}

func TestTreeFormats(t *testing.T) {
	dir, input := writeCorpus(t)
	textPath := filepath.Join(dir, "tree.txt")
	jsonPath := filepath.Join(dir, "tree.json")
	execute(t, "train", "-i", input, "-o", textPath)
	execute(t, "train", "-i", input, "-o", jsonPath)

	expected, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), execute(t, "tree", "-t", jsonPath, "-f", "text"))

	jsonTree, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, string(jsonTree), execute(t, "tree", "-t", textPath, "-f", "json"))

	diagram := execute(t, "tree", "-t", textPath, "--stats")
	assert.True(t, strings.HasPrefix(diagram, "{ hello < 0.458"))
	assert.True(t, strings.HasSuffix(diagram, "2 leaves, 1 decisions, depth 1\n"))
}

func TestDatasetImport(t *testing.T) {
	dir, input := writeCorpus(t)
	treePath := filepath.Join(dir, "tree.txt")
	execute(t, "train", "-i", input, "-o", treePath)
	expected, err := os.ReadFile(treePath)
	require.NoError(t, err)

	for _, name := range []string{"corpus.yml", "corpus.db"} {
		t.Run(name, func(t *testing.T) {
			output := filepath.Join(dir, name)
			execute(t, "dataset", "import", "-i", input, "-o", output, "--batch-size", "1")
			assert.Equal(t, string(expected), execute(t, "train", "-i", output))
			assert.Equal(t, "ham: 1.0000\nspam: 1.0000\nOverall: 1.0000\n", execute(t, "test", "-t", treePath, "-i", output))
		})
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		location string
		kind     datasetKind
	}{
		{"", csvDataset},
		{"mail.csv", csvDataset},
		{"mail.yml", yamlDataset},
		{"MAIL.YAML", yamlDataset},
		{"mail.db", sqlite3Dataset},
		{"postgresql://user@localhost/mail", postgresDataset},
		{"postgres://user@localhost/mail", postgresDataset},
		{"mongodb://localhost/mail", mongoDataset},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.kind, kindOf(tc.location), tc.location)
	}
}

func TestTextToClassify(t *testing.T) {
	s, err := textToClassify([]string{"win", "cash"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "win cash", s)
	s, err = textToClassify(nil, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", s)
}

func TestValidate(t *testing.T) {
	root := &rootCmdConfig{}
	assert.Error(t, (&modelConfig{rootCmdConfig: root}).ValidateSource())
	assert.Error(t, (&modelConfig{rootCmdConfig: root, treeFile: "t", storeLoc: "s"}).ValidateSource())
	assert.Error(t, (&modelConfig{rootCmdConfig: root, storeLoc: "s"}).ValidateSource())
	assert.NoError(t, (&modelConfig{rootCmdConfig: root, storeLoc: "s", modelName: "m"}).ValidateSource())
	assert.NoError(t, (&modelConfig{rootCmdConfig: root, treeFile: "t"}).ValidateSource())

	tcc := &treeCmdConfig{modelConfig: modelConfig{rootCmdConfig: root, treeFile: "t"}, format: "xml"}
	assert.Error(t, tcc.Validate())
	tcc.format = jsonFormat
	assert.NoError(t, tcc.Validate())

	train := &trainCmdConfig{modelConfig: modelConfig{storeLoc: "s"}}
	assert.Error(t, train.Validate())
	train.modelName = "m"
	assert.NoError(t, train.Validate())
	train.output = "tree.txt"
	assert.Error(t, train.Validate())

	assert.Error(t, (&datasetCmdConfig{}).Validate())
	assert.Error(t, (&datasetCmdConfig{batchSize: 1, output: "a.db", datasetConfig: datasetConfig{dataInput: "a.db"}}).Validate())
	assert.NoError(t, (&datasetCmdConfig{batchSize: 1, output: "b.db", datasetConfig: datasetConfig{dataInput: "a.csv"}}).Validate())
}
