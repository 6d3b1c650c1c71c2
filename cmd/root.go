// Package cmd implements the jvmutils command-line interface: a thin
// cobra wrapper around the locator and provisioning packages.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/covers1624/jvmutils/internal/cliutil"
)

var (
	verbose bool
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "jvmutils",
	Short: "Discover, verify, and provision Java runtimes",
	Long: `jvmutils finds Java installations already on this machine and, when
nothing suitable is found, provisions one from Eclipse Adoptium.

Run with no subcommand for a quick banner; use "list" to see what's
already installed and "provision" to fetch one that matches a request.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cliutil.PrintBanner()
		_ = cmd.Help()
	},
}

func newLogger(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Execute runs the root command, printing and exiting non-zero on
// failure. Called from main.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(listCmd, provisionCmd)

	if err := rootCmd.Execute(); err != nil {
		cliutil.PrintError(err.Error())
		os.Exit(1)
	}
}
