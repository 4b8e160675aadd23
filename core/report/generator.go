package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"remap/core/logger"
	"remap/core/models"
)

// Dir is the reports directory, relative to the project root.
const Dir = "reports"

const timestampLayout = "2006-01-02T15-04-05"

// GenerateImportReport renders the durable Markdown record of one run
// and writes it under the reports directory, creating it if absent. The
// file name embeds the current time, so prior reports are never
// overwritten. Returns the written path.
func GenerateImportReport(root string, result models.TransformationResult, mappings []models.ImportMapping) (string, error) {
	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", models.NewStageError(models.CodeReportGenerationFailed,
			"cannot create reports directory", err)
	}

	name := fmt.Sprintf("import-rewriting-report-%s.md", time.Now().Format(timestampLayout))
	path := filepath.Join(dir, name)

	content := render(result, mappings)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", models.NewStageError(models.CodeReportGenerationFailed,
			"cannot write report file", err)
	}

	logger.Debug("Wrote import rewriting report to %s", path)
	return path, nil
}

func render(result models.TransformationResult, mappings []models.ImportMapping) string {
	var b strings.Builder

	b.WriteString("# Import Rewriting Report\n\n")
	fmt.Fprintf(&b, "- Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Operation: %s\n", result.ID)
	fmt.Fprintf(&b, "- Strategy: %s\n", result.Strategy)
	fmt.Fprintf(&b, "- Status: %s\n\n", result.Status)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total files scanned: %d\n", result.TotalFiles)
	fmt.Fprintf(&b, "- Files modified: %d\n", result.ModifiedFiles)
	fmt.Fprintf(&b, "- Success rate: %.1f%%\n", result.SuccessRate())
	fmt.Fprintf(&b, "- Imports rewritten: %d\n", result.TotalImportsRewritten)
	fmt.Fprintf(&b, "- Elapsed: %s\n\n", result.Elapsed().Round(time.Millisecond))

	b.WriteString("## Mappings\n\n")
	if len(mappings) == 0 {
		b.WriteString("No mappings were generated.\n\n")
	} else {
		for _, m := range mappings {
			fmt.Fprintf(&b, "- `%s` -> `%s` (%s, confidence %.0f%%)\n",
				m.OldPath, m.NewPath, m.TypeName, m.Confidence*100)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Validation Errors\n\n")
	if len(result.Errors) == 0 {
		b.WriteString("No validation issues found.\n")
	} else {
		for _, e := range result.Errors {
			fmt.Fprintf(&b, "- **%s** %s:%d `%s`: %s", e.Severity, e.File, e.Line, e.OldImport, e.Message)
			if e.NewImport != "" {
				fmt.Fprintf(&b, " (suggested: `%s`)", e.NewImport)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
