package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	debug      bool
	configFile string
	logFile    string
	logger     *zap.SugaredLogger
	settings   *viper.Viper
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{logger: zap.NewNop().Sugar()}
	rootCmd := &cobra.Command{
		Use:   "spamclassifier",
		Short: "spamclassifier is a tool to classify texts with decision trees",
		Long:  `A tool to grow binary decision trees from labeled texts one example at a time, test them, and use them to classify texts`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(config.verbose, config.debug, config.logFile)
			if err != nil {
				return err
			}
			config.logger = logger
			config.settings, err = loadSettings(config.configFile)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.logger.Sync()
			if config.cancelFunc != nil {
				config.cancelFunc()
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information on STDERR")
	rootCmd.PersistentFlags().BoolVar(&(config.debug), "debug", false, "log every split of the tree while training")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML file with settings for the model stores")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "path to a file to which logs are also written, rotated hourly")
	rootCmd.AddCommand(
		versionCmd(),
		trainCmd(config),
		classifyCmd(config),
		testCmd(config),
		treeCmd(config),
		datasetCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
	}
	return rcc.ctx
}
