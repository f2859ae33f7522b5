package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	classifier "github.com/techytabbyy/Spam-Classifier"
)

type testCmdConfig struct {
	*rootCmdConfig
	datasetConfig
	modelConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{
		rootCmdConfig: rootConfig,
		datasetConfig: datasetConfig{rootCmdConfig: rootConfig},
		modelConfig:   modelConfig{rootCmdConfig: rootConfig},
	}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the accuracy of a tree",
		Long:  `Test the accuracy of a tree on a set of labeled examples, overall and for each label`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.ValidateSource()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := config.Context()
			c, err := config.loadClassifier(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, closeDataset, err := config.dataset(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer closeDataset()
			count, err := ds.Count(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting testing examples: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Testing tree against a set with %d examples...", count)
			bar := newProgress(config.verbose, count)
			accuracy, err := c.ScoreDataset(ctx, ds, bar.Increment)
			bar.Finish()
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing the tree: %v\n", err)
				os.Exit(5)
			}
			printAccuracy(cmd.OutOrStdout(), accuracy)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv), YML (.yml) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the options to turn CSV texts into feature vectors")
	cmd.Flags().StringVarP(&(config.treeFile), "tree", "t", "", "path to a file with the tree, parsed as JSON if it ends in .json")
	cmd.Flags().StringVarP(&(config.storeLoc), "store", "s", "", "model store to get the tree from: redis or a directory path")
	cmd.Flags().StringVar(&(config.modelName), "model", "", "name of the model in the store (required with store)")
	return cmd
}

func printAccuracy(w io.Writer, a classifier.Accuracy) {
	for _, label := range a.Labels() {
		fmt.Fprintf(w, "%s: %.4f\n", label, a[label])
	}
}
