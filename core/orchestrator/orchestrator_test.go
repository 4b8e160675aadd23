package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remap/core/analysis"
	"remap/core/config"
	"remap/core/models"
	"remap/core/report"
)

const analysisFixture = `{
	"identical": {
		"groups": [
			{
				"canonicalFile": "src/types/foundation/user.ts",
				"duplicates": ["src/shared/types/user.ts"]
			}
		]
	}
}`

func write(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, root, analysis.ReportPath, analysisFixture)
	write(t, root, "src/components/profile.ts", "import { User } from '../shared/types/user';\n")
	write(t, root, "src/boot.ts", "import '../shared/types/user';\n")
	write(t, root, "src/plain.ts", "export const plain = 1;\n")
	return root
}

func TestRunCompletesAndPersists(t *testing.T) {
	root := fixtureRoot(t)

	result, err := New(root, config.Default(), models.DefaultRewriteOptions()).Run()
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, 3, result.TotalFiles)
	assert.Equal(t, 1, result.ModifiedFiles)
	assert.Equal(t, 1, result.TotalImportsRewritten)
	assert.Equal(t, []string{"src/components/profile.ts"}, result.ChangedFiles)
	assert.False(t, result.EndTime.IsZero())

	onDisk, err := os.ReadFile(filepath.Join(root, "src", "components", "profile.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import { User } from '../types/foundation.types';\n", string(onDisk))

	// Side-effect-only import stays untouched.
	boot, err := os.ReadFile(filepath.Join(root, "src", "boot.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import '../shared/types/user';\n", string(boot))

	// Report was written.
	entries, err := os.ReadDir(filepath.Join(root, report.Dir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunDryRunPurity(t *testing.T) {
	root := fixtureRoot(t)

	opts := models.DefaultRewriteOptions()
	opts.DryRun = true
	opts.GenerateReport = false

	result, err := New(root, config.Default(), opts).Run()
	require.NoError(t, err)

	// Counters reflect what would have changed.
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.TotalImportsRewritten)

	// But nothing on disk did.
	onDisk, err := os.ReadFile(filepath.Join(root, "src", "components", "profile.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import { User } from '../shared/types/user';\n", string(onDisk))
}

func TestRunSkippedWhenNothingMatches(t *testing.T) {
	root := t.TempDir()
	write(t, root, analysis.ReportPath, analysisFixture)
	write(t, root, "src/app.ts", "import React from 'react';\n")

	opts := models.DefaultRewriteOptions()
	opts.GenerateReport = false

	result, err := New(root, config.Default(), opts).Run()
	require.NoError(t, err)
	assert.Equal(t, models.StatusSkipped, result.Status)
	assert.Zero(t, result.TotalImportsRewritten)
}

func TestRunFailsWithoutAnalysisReport(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/app.ts", "import { User } from '../shared/types/user';\n")

	result, err := New(root, config.Default(), models.DefaultRewriteOptions()).Run()
	require.Error(t, err)
	assert.Equal(t, models.CodeAnalysisLoadFailed, models.CodeOf(err))
	assert.Equal(t, models.StatusFailed, result.Status)

	// Short-circuit: no file was touched.
	onDisk, err := os.ReadFile(filepath.Join(root, "src", "app.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import { User } from '../shared/types/user';\n", string(onDisk))
}

func TestRunRecordsValidationFindings(t *testing.T) {
	root := fixtureRoot(t)
	write(t, root, "src/legacy.ts", "import { Old } from '../common/types/old';\n")

	opts := models.DefaultRewriteOptions()
	opts.GenerateReport = false

	result, err := New(root, config.Default(), opts).Run()
	require.NoError(t, err)

	found := false
	for _, e := range result.Errors {
		if e.File == "src/legacy.ts" && e.Severity == models.SeverityError {
			found = true
		}
	}
	assert.True(t, found, "expected a deprecated-alias finding for src/legacy.ts")
}

func TestRunToleratesPerFileLoadFailure(t *testing.T) {
	root := fixtureRoot(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "src", "broken.ts")))

	opts := models.DefaultRewriteOptions()
	opts.GenerateReport = false

	result, err := New(root, config.Default(), opts).Run()
	require.NoError(t, err)

	// The broken file is recorded, the rest of the run still completes.
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.TotalImportsRewritten)

	found := false
	for _, e := range result.Errors {
		if e.File == "src/broken.ts" {
			found = true
		}
	}
	assert.True(t, found, "expected a load error for src/broken.ts")
}
