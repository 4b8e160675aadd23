package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"remap/core/logger"
)

type Config struct {
	// CanonicalMarkers are path fragments identifying trusted canonical
	// destinations.
	CanonicalMarkers []string `yaml:"canonical_markers"`

	// UIMarker selects the UI variant of the canonical target when it
	// appears in a group's canonical path.
	UIMarker string `yaml:"ui_marker"`

	// Exclude lists directory names skipped during the source walk.
	Exclude []string `yaml:"exclude"`

	Options Options `yaml:"options"`
}

type Options struct {
	CanonicalPathsOnly bool   `yaml:"canonical_paths_only"`
	ValidateImports    bool   `yaml:"validate_imports"`
	GenerateReport     bool   `yaml:"generate_report"`
	ValidationLevel    string `yaml:"validation_level"`
	DryRun             bool   `yaml:"dry_run"`
}

func Default() *Config {
	return &Config{
		CanonicalMarkers: []string{"types/foundation", "shared-foundation"},
		UIMarker:         "foundation.ui",
		Exclude:          []string{"node_modules", "dist", "build"},
		Options: Options{
			CanonicalPathsOnly: true,
			ValidateImports:    true,
			GenerateReport:     true,
			ValidationLevel:    "strict",
			DryRun:             false,
		},
	}
}

// Load reads remap.yaml from root, falling back to defaults when no
// config file exists. Fields left empty in the file keep their default
// values.
func Load(root string) (*Config, error) {
	filePath := filepath.Join(root, "remap.yaml")

	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found at %s, using default config", filePath)
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(cfg.CanonicalMarkers) == 0 {
		cfg.CanonicalMarkers = Default().CanonicalMarkers
	}
	if len(cfg.Exclude) == 0 {
		cfg.Exclude = Default().Exclude
	}

	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}
