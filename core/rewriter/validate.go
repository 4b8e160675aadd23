package rewriter

import (
	"fmt"
	"strings"

	"remap/core/mapping"
	"remap/core/models"
)

// deprecatedAliasPatterns are legacy type-directory fragments that
// should have been migrated to the canonical namespace.
var deprecatedAliasPatterns = []string{
	"shared/types/",
	"common/types/",
}

// ValidateImportPaths runs the static hygiene pass over a tree. It never
// mutates the file: findings carry a suggested replacement instead.
func ValidateImportPaths(file *models.SourceFile, policy mapping.Policy) ([]models.ImportValidationError, error) {
	if file == nil {
		return nil, fmt.Errorf("no source file to validate")
	}

	var findings []models.ImportValidationError

	for _, stmt := range file.Imports {
		if strings.Contains(stmt.Specifier, "//") {
			findings = append(findings, models.ImportValidationError{
				File:      file.RelPath,
				Line:      stmt.Line,
				OldImport: stmt.Specifier,
				NewImport: collapseSeparators(stmt.Specifier),
				Message:   "import path contains doubled path separator",
				Severity:  models.SeverityWarning,
			})
		}

		for _, pattern := range deprecatedAliasPatterns {
			if strings.Contains(stmt.Specifier, pattern) && !policy.IsTrusted(stmt.Specifier) {
				findings = append(findings, models.ImportValidationError{
					File:      file.RelPath,
					Line:      stmt.Line,
					OldImport: stmt.Specifier,
					NewImport: mapping.FoundationTarget,
					Message:   fmt.Sprintf("deprecated alias %q should point at the canonical namespace", pattern),
					Severity:  models.SeverityError,
				})
				break
			}
		}
	}

	return findings, nil
}

func collapseSeparators(specifier string) string {
	for strings.Contains(specifier, "//") {
		specifier = strings.ReplaceAll(specifier, "//", "/")
	}
	return specifier
}
