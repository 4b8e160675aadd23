package compliance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"remap/core/logger"
	"remap/core/mapping"
	"remap/core/models"
)

// AliasPrefix maps to the project root (src/ first, then the root
// itself).
const AliasPrefix = "@/"

// resolutionSuffixes are tried in order when probing a resolved path on
// disk.
var resolutionSuffixes = []string{
	"",
	".ts",
	".tsx",
	".js",
	".jsx",
	"/index.ts",
	"/index.js",
}

// ValidateImportResolution checks that importPath, written in fromFile,
// resolves to something on disk under root. Bare package-style
// specifiers are assumed resolvable (they live in node_modules, outside
// this tool's view).
func ValidateImportResolution(root, fromFile, importPath string) (bool, error) {
	switch {
	case strings.HasPrefix(importPath, AliasPrefix):
		rest := strings.TrimPrefix(importPath, AliasPrefix)
		for _, base := range []string{filepath.Join(root, "src"), root} {
			if probe(filepath.Join(base, filepath.FromSlash(rest))) {
				return true, nil
			}
		}
		return false, nil

	case strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../"):
		resolved := filepath.Join(filepath.Dir(fromFile), filepath.FromSlash(importPath))
		return probe(resolved), nil

	default:
		// Bare specifier: a package dependency, assumed resolvable.
		return true, nil
	}
}

func probe(base string) bool {
	for _, suffix := range resolutionSuffixes {
		if _, err := os.Stat(base + suffix); err == nil {
			return true
		}
	}
	return false
}

// ValidateCanonicalCompliance is the pre-flight gate: it fails fast on
// the first mapping whose destination lies outside the trusted
// namespace, guaranteeing no untrusted destination is ever written.
func ValidateCanonicalCompliance(mappings []models.ImportMapping, policy mapping.Policy) (bool, error) {
	for _, m := range mappings {
		if !policy.IsTrusted(m.NewPath) {
			return false, models.NewStageError(models.CodeCanonicalComplianceFailed,
				fmt.Sprintf("mapping %s -> %s targets a path outside the canonical namespace", m.OldPath, m.NewPath), nil)
		}
	}

	logger.Debug("Canonical compliance verified for %d mapping(s)", len(mappings))
	return true, nil
}
