/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"remap/core/analysis"
	"remap/core/config"
	"remap/core/logger"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a project for remap",
	Long:  `Writes a starter remap.yaml and the analysis-results directory into the target project.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("init called")

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		configPath := filepath.Join(dir, "remap.yaml")
		if _, err := os.Stat(configPath); err == nil && !force {
			fmt.Printf("Config %s already exists. Use --force to overwrite.\n", configPath)
			return nil
		}

		data, err := yaml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("failed to render default config: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		if err := os.WriteFile(configPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configPath, err)
		}

		analysisDir := filepath.Join(dir, filepath.Dir(filepath.FromSlash(analysis.ReportPath)))
		if err := os.MkdirAll(analysisDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", analysisDir, err)
		}

		fmt.Printf("Initialized %s\n", dir)
		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - place the duplication-analysis report at %s\n", analysis.ReportPath)
		fmt.Printf("  - remap rewrite --dry-run\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
