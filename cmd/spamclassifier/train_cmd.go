package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	classifier "github.com/techytabbyy/Spam-Classifier"
)

type trainCmdConfig struct {
	*rootCmdConfig
	datasetConfig
	modelConfig
	output string
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{
		rootCmdConfig: rootConfig,
		datasetConfig: datasetConfig{rootCmdConfig: rootConfig},
		modelConfig:   modelConfig{rootCmdConfig: rootConfig},
	}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Grow a tree from a set of labeled examples",
		Long:  `Grow a tree from a set of labeled examples, feeding it one example at a time, and write it to a file or a model store`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := config.Context()
			ds, closeDataset, err := config.dataset(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			defer closeDataset()
			count, err := ds.Count(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting training examples: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d examples...", count)
			bar := newProgress(config.verbose, count)
			c, err := classifier.NewFromDataset(ctx, ds, bar.Increment, classifier.WithLogger(config.logger))
			bar.Finish()
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			err = config.saveClassifier(ctx, c, config.output, cmd.OutOrStdout())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv), YML (.yml) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the options to turn CSV texts into feature vectors")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the tree will be written, in JSON if it ends in .json (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.storeLoc), "store", "s", "", "model store to put the tree in: redis or a directory path")
	cmd.Flags().StringVar(&(config.modelName), "model", "", "name of the model in the store (required with store)")
	return cmd
}

func (tcc *trainCmdConfig) Validate() error {
	if tcc.storeLoc != "" && tcc.output != "" {
		return fmt.Errorf("cannot set both output and store flags at the same time")
	}
	if tcc.storeLoc != "" && tcc.modelName == "" {
		return fmt.Errorf("required model flag was not set")
	}
	return nil
}
