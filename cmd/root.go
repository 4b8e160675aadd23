/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"remap/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "remap",
	Short: "Consolidates duplicate type declarations by rewriting imports.",
	Long: `Remap rewrites import paths across a TypeScript source tree, driven by a
duplication-analysis report. Imports of duplicated modules are redirected
to their canonical locations, with confidence-scored mappings, canonical
path policy enforcement, and a durable Markdown report per run.`,
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// setupLogging applies the persistent logging flags; every command calls
// it at the top of its RunE.
func setupLogging() error {
	logger.SetVerbose(verbose)

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open logfile %s: %w", logfile, err)
		}
		logger.AddWriterForAll(f)
	}

	return nil
}

// resolveRoot returns the project root from args, defaulting to the
// working directory.
func resolveRoot(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
