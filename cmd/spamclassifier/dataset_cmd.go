package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/techytabbyy/Spam-Classifier/dataset"
)

type datasetCmdConfig struct {
	datasetConfig
	output    string
	batchSize int
}

func datasetCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage datasets of labeled examples",
		Long:  `Manage datasets of labeled examples`,
	}
	cmd.AddCommand(datasetImportCmd(rootConfig))
	return cmd
}

func datasetImportCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datasetCmdConfig{datasetConfig: datasetConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the examples of a dataset into another",
		Long:  `Copy the examples of a dataset into a SQLite3, PostgreSQL, MongoDB or YML dataset, vectorizing CSV texts on the way`,
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
			w, closeWriter, err := config.datasetWriter(ctx, config.output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			count, err := ds.Count(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting examples: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Copying %d examples...", count)
			bar := newProgress(config.verbose, count)
			n, err := dataset.Copy(ctx, w, ds, config.batchSize, bar.Add)
			bar.Finish()
			if cerr := closeWriter(); err == nil {
				err = cerr
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "copying examples: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Copied %d examples", n)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv), YML (.yml) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the examples to copy (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the options to turn CSV texts into feature vectors")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to an output YML (.yml) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to copy the examples to (defaults to STDOUT, written as YML)")
	cmd.Flags().IntVar(&(config.batchSize), "batch-size", 100, "number of examples written at a time")
	return cmd
}

func (dcc *datasetCmdConfig) Validate() error {
	if dcc.batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", dcc.batchSize)
	}
	if dcc.output != "" && dcc.output == dcc.dataInput {
		return fmt.Errorf("input and output cannot be the same")
	}
	return nil
}
