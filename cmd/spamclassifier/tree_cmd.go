package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	classifier "github.com/techytabbyy/Spam-Classifier"
	"github.com/techytabbyy/Spam-Classifier/tree"
	"github.com/techytabbyy/Spam-Classifier/tree/json"
)

const (
	diagramFormat = "diagram"
	textFormat    = "text"
	jsonFormat    = "json"
)

type treeCmdConfig struct {
	modelConfig
	format string
	stats  bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{modelConfig: modelConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long:  `Show a tree as a diagram, or convert it to the text or JSON formats`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			c, err := config.loadClassifier(config.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = writeTree(cmd.OutOrStdout(), c, config.format)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if config.stats {
				s := tree.StatsFor(c.Root())
				fmt.Fprintf(cmd.OutOrStdout(), "%d leaves, %d decisions, depth %d\n", s.Leaves, s.Decisions, s.Depth)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeFile), "tree", "t", "", "path to a file with the tree, parsed as JSON if it ends in .json")
	cmd.Flags().StringVarP(&(config.storeLoc), "store", "s", "", "model store to get the tree from: redis or a directory path")
	cmd.Flags().StringVar(&(config.modelName), "model", "", "name of the model in the store (required with store)")
	cmd.Flags().StringVarP(&(config.format), "format", "f", diagramFormat, "format to show the tree in: diagram, text or json")
	cmd.Flags().BoolVar(&(config.stats), "stats", false, "also print the number of leaves and decisions and the depth of the tree")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	switch tcc.format {
	case diagramFormat, textFormat, jsonFormat:
	default:
		return fmt.Errorf("unknown format %q, expected diagram, text or json", tcc.format)
	}
	return tcc.ValidateSource()
}

func writeTree(w io.Writer, c *classifier.Classifier, format string) error {
	switch format {
	case textFormat:
		return c.Save(w)
	case jsonFormat:
		return json.WriteJSONTree(c.Root(), json.NewNodeEncodeDecoder(), w)
	case diagramFormat:
		_, err := io.WriteString(w, c.String())
		return err
	}
	return errors.Errorf("unknown format %q", format)
}
