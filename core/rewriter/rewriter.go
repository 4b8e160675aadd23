package rewriter

import (
	"fmt"
	"strings"

	"remap/core/logger"
	"remap/core/models"
)

// RewriteImports enumerates every import statement in the tree and
// replaces the first-matching specifiers with their canonical paths.
// Matching is first-match-wins over the mapping list, and statements
// rewritten in this pass are not re-scanned. Side-effect-only imports
// are never rewritten: the guard requires at least one named binding.
// Returns the number of rewritten statements.
func RewriteImports(file *models.SourceFile, mappings []models.ImportMapping) (int, error) {
	if file == nil {
		return 0, fmt.Errorf("no source file to rewrite")
	}

	count := 0
	for i := range file.Imports {
		stmt := &file.Imports[i]
		if !stmt.HasBindings() {
			continue
		}

		m, ok := matchMapping(stmt.Specifier, mappings)
		if !ok || stmt.Specifier == m.NewPath {
			continue
		}

		logger.Debug("Rewriting %s:%d: %s -> %s", file.RelPath, stmt.Line, stmt.Specifier, m.NewPath)
		file.ReplaceSpecifier(i, m.NewPath)
		count++
	}

	return count, nil
}

// matchMapping returns the first mapping whose OldPath matches the
// specifier. Besides the exact match, two loose forms hold because
// specifiers and analysis paths can differ in relative-path form: a
// `/<typeName>` suffix match, and a bidirectional suffix match between
// specifier and OldPath. The looseness means an overly generic suffix
// can shadow a later, more specific mapping; first-match-wins is kept
// as observed behavior.
func matchMapping(specifier string, mappings []models.ImportMapping) (models.ImportMapping, bool) {
	for _, m := range mappings {
		if specifier == m.OldPath {
			return m, true
		}
		if strings.HasSuffix(specifier, "/"+m.TypeName) {
			return m, true
		}
		if strings.HasSuffix(specifier, m.OldPath) || strings.HasSuffix(m.OldPath, specifier) {
			return m, true
		}
	}
	return models.ImportMapping{}, false
}
