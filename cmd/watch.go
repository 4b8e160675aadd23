/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"remap/core/cache"
	"remap/core/config"
	"remap/core/logger"
	"remap/core/orchestrator"
	"remap/core/watcher"
)

var watchApply bool

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Re-runs the rewriting pipeline when source files change",
	Long: `Watches the source tree and re-runs the rewriting pipeline after each
debounced batch of changes. Runs in dry-run mode unless --apply is set,
so it reports what would change without touching files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("watch called")

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := optionsFromConfig(cfg)
		opts.DryRun = !watchApply
		opts.GenerateReport = false

		runOnce := func() {
			result, rerr := orchestrator.New(root, cfg, opts).Run()
			if rerr != nil {
				logger.Error("Run failed: %v", rerr)
				return
			}
			printRunSummary(result)
		}

		w, err := watcher.New(root, cfg.Exclude)
		if err != nil {
			return err
		}
		defer w.Close()

		w.OnChange = func(changed []string) error {
			logger.Info("Detected changes in %d file(s)", len(changed))

			pc := cache.Load(root)
			for _, relPath := range changed {
				pc.Invalidate(relPath)
			}
			if perr := pc.Persist(); perr != nil {
				logger.Debug("Failed to persist parse cache: %v", perr)
			}

			runOnce()
			return nil
		}

		runOnce()
		logger.Info("Watching %s for changes (apply: %v)", root, watchApply)
		return w.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchApply, "apply", false, "Persist rewrites on each run instead of dry-run")
}
