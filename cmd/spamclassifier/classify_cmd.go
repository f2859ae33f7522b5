package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	datasetConfig
	modelConfig
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{
		rootCmdConfig: rootConfig,
		datasetConfig: datasetConfig{rootCmdConfig: rootConfig},
		modelConfig:   modelConfig{rootCmdConfig: rootConfig},
	}
	cmd := &cobra.Command{
		Use:   "classify [TEXT...]",
		Short: "Classify a text with a tree",
		Long:  `Classify a text with a tree and print its label. The text is taken from the arguments or, if none are given, from STDIN`,
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
			v, err := config.vectorizer()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			input, err := textToClassify(args, cmd.InOrStdin())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			vector, err := v.Vectorize(input)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			label, err := c.Classify(vector)
			if err != nil {
				fmt.Fprintf(os.Stderr, "classifying text: %v\n", err)
				os.Exit(6)
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
		},
	}
	cmd.Flags().StringVarP(&(config.treeFile), "tree", "t", "", "path to a file with the tree, parsed as JSON if it ends in .json")
	cmd.Flags().StringVarP(&(config.storeLoc), "store", "s", "", "model store to get the tree from: redis or a directory path")
	cmd.Flags().StringVar(&(config.modelName), "model", "", "name of the model in the store (required with store)")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the options to turn the text into a feature vector")
	return cmd
}

func textToClassify(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading text from STDIN")
	}
	return string(data), nil
}
