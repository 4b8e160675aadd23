/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"remap/core/config"
	"remap/core/logger"
	"remap/core/models"
	"remap/core/orchestrator"
)

var (
	rewriteDryRun          bool
	rewriteSkipValidation  bool
	rewriteNoReport        bool
	rewriteAllDestinations bool
	rewriteLevel           string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [root]",
	Short: "Rewrites imports of duplicated modules toward their canonical locations",
	Long: `Runs the full rewriting pipeline over the project root: loads the
duplication-analysis report, generates confidence-scored import mappings,
verifies canonical compliance, rewrites matching imports in every source
file, and writes a Markdown report of the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("rewrite called")

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := optionsFromConfig(cfg)
		if cmd.Flags().Changed("dry-run") {
			opts.DryRun = rewriteDryRun
		}
		if cmd.Flags().Changed("skip-validation") {
			opts.ValidateImports = !rewriteSkipValidation
		}
		if cmd.Flags().Changed("no-report") {
			opts.GenerateReport = !rewriteNoReport
		}
		if cmd.Flags().Changed("all-destinations") {
			opts.CanonicalPathsOnly = !rewriteAllDestinations
		}
		if cmd.Flags().Changed("level") {
			opts.ValidationLevel = rewriteLevel
		}

		result, err := orchestrator.New(root, cfg, opts).Run()
		printRunSummary(result)
		if err != nil {
			return err
		}

		return nil
	},
}

func optionsFromConfig(cfg *config.Config) models.RewriteOptions {
	return models.RewriteOptions{
		CanonicalPathsOnly: cfg.Options.CanonicalPathsOnly,
		ValidateImports:    cfg.Options.ValidateImports,
		GenerateReport:     cfg.Options.GenerateReport,
		ValidationLevel:    cfg.Options.ValidationLevel,
		DryRun:             cfg.Options.DryRun,
	}
}

func printRunSummary(result *models.TransformationResult) {
	if result == nil {
		return
	}

	statusColor := color.New(color.FgRed)
	switch result.Status {
	case models.StatusCompleted:
		statusColor = color.New(color.FgGreen)
	case models.StatusSkipped:
		statusColor = color.New(color.FgYellow)
	}

	fmt.Printf("Status:            %s\n", statusColor.Sprint(result.Status))
	fmt.Printf("Files scanned:     %d\n", result.TotalFiles)
	fmt.Printf("Files modified:    %d\n", result.ModifiedFiles)
	fmt.Printf("Imports rewritten: %d\n", result.TotalImportsRewritten)

	warnings, errors := 0, 0
	for _, e := range result.Errors {
		if e.Severity == models.SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	fmt.Printf("Findings:          %d error(s), %d warning(s)\n", errors, warnings)

	if verbose {
		for _, f := range result.ChangedFiles {
			fmt.Printf("  modified: %s\n", f)
		}
	}
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().BoolVar(&rewriteDryRun, "dry-run", false, "Compute and report without persisting changes")
	rewriteCmd.Flags().BoolVar(&rewriteSkipValidation, "skip-validation", false, "Skip the compliance pre-flight and per-file validation")
	rewriteCmd.Flags().BoolVar(&rewriteNoReport, "no-report", false, "Do not write the Markdown run report")
	rewriteCmd.Flags().BoolVar(&rewriteAllDestinations, "all-destinations", false, "Consider groups outside the trusted canonical namespace")
	rewriteCmd.Flags().StringVar(&rewriteLevel, "level", "strict", "Validation strictness level")
}
