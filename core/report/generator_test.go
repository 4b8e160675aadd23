package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remap/core/models"
)

func sampleResult() models.TransformationResult {
	result := models.NewTransformationResult("canonical-consolidation")
	result.Status = models.StatusCompleted
	result.TotalFiles = 4
	result.ModifiedFiles = 2
	result.TotalImportsRewritten = 3
	result.EndTime = result.StartTime.Add(120 * time.Millisecond)
	return *result
}

func TestGenerateImportReportWritesFile(t *testing.T) {
	root := t.TempDir()
	mappings := []models.ImportMapping{
		{TypeName: "user", OldPath: "src/shared/user", NewPath: "../types/foundation.types", Confidence: 0.9},
	}

	path, err := GenerateImportReport(root, sampleResult(), mappings)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, Dir), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "import-rewriting-report-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Import Rewriting Report")
	assert.Contains(t, content, "Status: completed")
	assert.Contains(t, content, "Success rate: 50.0%")
	assert.Contains(t, content, "Imports rewritten: 3")
	assert.Contains(t, content, "`src/shared/user` -> `../types/foundation.types` (user, confidence 90%)")
	assert.Contains(t, content, "No validation issues found.")
}

func TestGenerateImportReportWithErrors(t *testing.T) {
	root := t.TempDir()

	result := sampleResult()
	result.Errors = []models.ImportValidationError{
		{
			File:      "src/app.ts",
			Line:      3,
			OldImport: "../shared//types/a",
			NewImport: "../shared/types/a",
			Message:   "import path contains doubled path separator",
			Severity:  models.SeverityWarning,
		},
	}

	path, err := GenerateImportReport(root, result, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "No mappings were generated.")
	assert.Contains(t, content, "**warning** src/app.ts:3")
	assert.Contains(t, content, "suggested: `../shared/types/a`")
	assert.NotContains(t, content, "No validation issues found.")
}

func TestSuccessRateZeroFiles(t *testing.T) {
	result := models.NewTransformationResult("canonical-consolidation")
	assert.Equal(t, 0.0, result.SuccessRate())
}
