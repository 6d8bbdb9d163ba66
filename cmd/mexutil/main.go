// Package main provides the mexutil CLI for inspecting MEX array fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli holds state shared by all subcommands.
type cli struct {
	verbose     bool
	logger      *zap.Logger
	buildLogger func(verbose bool) (*zap.Logger, error)
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd() *cobra.Command {
	return newCLI(productionLogger).rootCmd()
}

func newCLI(buildLogger func(verbose bool) (*zap.Logger, error)) *cli {
	return &cli{logger: zap.NewNop(), buildLogger: buildLogger}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mexutil",
		Short: "Inspect and validate MEX array descriptors",
		Long: `mexutil loads array descriptors from a YAML fixture file and runs the
argument checks a MEX binding performs on them: dimension extraction,
slice-shape broadcasting, slice index bounds and row/column counts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := c.buildLogger(c.verbose)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "mexutil %s\n", version)
			},
		},
		c.dimsCmd(),
		c.expandCmd(),
		c.checkSliceCmd(),
		c.checkSizeCmd(),
		c.showCmd(),
	)
	return root
}
