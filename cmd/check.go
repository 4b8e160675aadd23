/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"remap/core/cache"
	"remap/core/compliance"
	"remap/core/config"
	"remap/core/logger"
	"remap/core/mapping"
	"remap/core/models"
	"remap/core/project"
	"remap/core/rewriter"
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Validates import hygiene without modifying anything",
	Long: `Runs the static validation pass over every source file: doubled path
separators, deprecated alias patterns, and imports that do not resolve
on disk. Never mutates the tree. Exits non-zero when any error-severity
finding exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("check called")

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		policy := mapping.Policy{Markers: cfg.CanonicalMarkers, UIMarker: cfg.UIMarker}

		pc := cache.Load(root)
		proj, err := project.Load(root, cfg.Exclude, policy.Markers, pc)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		findings := append([]models.ImportValidationError{}, proj.LoadErrors...)

		for _, relPath := range proj.Paths() {
			f, _ := proj.File(relPath)

			hygiene, verr := rewriter.ValidateImportPaths(f, policy)
			if verr != nil {
				return fmt.Errorf("validation failed for %s: %w", relPath, verr)
			}
			findings = append(findings, hygiene...)

			for _, stmt := range f.Imports {
				resolved, rerr := compliance.ValidateImportResolution(root, f.Path, stmt.Specifier)
				if rerr != nil {
					return fmt.Errorf("resolution check failed for %s: %w", relPath, rerr)
				}
				if !resolved {
					findings = append(findings, models.ImportValidationError{
						File:      relPath,
						Line:      stmt.Line,
						OldImport: stmt.Specifier,
						Message:   "import does not resolve to a file on disk",
						Severity:  models.SeverityError,
					})
				}
			}
		}

		if perr := pc.Persist(); perr != nil {
			logger.Debug("Failed to persist parse cache: %v", perr)
		}

		errors := printFindings(findings)
		fmt.Printf("Checked %d file(s): %d finding(s)\n", proj.Len(), len(findings))

		if errors > 0 {
			return fmt.Errorf("%d import error(s) found", errors)
		}
		return nil
	},
}

func printFindings(findings []models.ImportValidationError) (errors int) {
	warnColor := color.New(color.FgYellow)
	errColor := color.New(color.FgRed)

	for _, finding := range findings {
		tag := warnColor.Sprint(string(finding.Severity))
		if finding.Severity == models.SeverityError {
			tag = errColor.Sprint(string(finding.Severity))
			errors++
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s", tag, finding.File)
		if finding.Line > 0 {
			fmt.Fprintf(&b, ":%d", finding.Line)
		}
		if finding.OldImport != "" {
			fmt.Fprintf(&b, " '%s'", finding.OldImport)
		}
		fmt.Fprintf(&b, ": %s", finding.Message)
		if finding.NewImport != "" {
			fmt.Fprintf(&b, " (suggested: '%s')", finding.NewImport)
		}
		fmt.Println(b.String())
	}

	return errors
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
