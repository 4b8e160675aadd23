package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remap/core/models"
)

func report(groups ...models.DuplicationGroup) *models.AnalysisReport {
	return &models.AnalysisReport{Identical: models.IdenticalSection{Groups: groups}}
}

func TestGenerateMappingsTrustedGroup(t *testing.T) {
	r := report(models.DuplicationGroup{
		CanonicalFile: "src/types/foundation/user.ts",
		Duplicates:    []string{"src/shared/user.ts"},
	})

	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, mappings, 1)

	m := mappings[0]
	assert.Equal(t, "user", m.TypeName)
	assert.Equal(t, "src/shared/user", m.OldPath)
	assert.Equal(t, FoundationTarget, m.NewPath)
	assert.InDelta(t, 0.9, m.Confidence, 1e-9)
}

func TestGenerateMappingsSkipsUntrustedCanonical(t *testing.T) {
	r := report(models.DuplicationGroup{
		CanonicalFile: "src/utils/helpers.ts",
		Duplicates:    []string{"src/lib/helpers.ts"},
	})

	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestGenerateMappingsDeepPathPenalty(t *testing.T) {
	r := report(models.DuplicationGroup{
		CanonicalFile: "src/types/foundation/user.ts",
		Duplicates:    []string{"src/features/account/models/user.ts"},
	})

	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, mappings, 1)

	// Five slash-separated segments lowers the 0.9 baseline to 0.8; still
	// above threshold, so the mapping is kept.
	assert.InDelta(t, 0.8, mappings[0].Confidence, 1e-9)
}

func TestGenerateMappingsExcludesCanonicalItself(t *testing.T) {
	r := report(models.DuplicationGroup{
		CanonicalFile: "src/types/foundation/user.ts",
		Duplicates:    []string{"src/types/foundation/user.ts", "src/shared/user.ts"},
	})

	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, "src/shared/user", mappings[0].OldPath)
}

func TestGenerateMappingsUITarget(t *testing.T) {
	r := report(models.DuplicationGroup{
		CanonicalFile: "src/types/foundation.ui/button.ts",
		Duplicates:    []string{"src/components/button.ts"},
	})

	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, FoundationUITarget, mappings[0].NewPath)
}

func TestGenerateMappingsInvariants(t *testing.T) {
	r := report(
		models.DuplicationGroup{
			CanonicalFile: "src/types/foundation/user.ts",
			Duplicates:    []string{"src/shared/user.ts", "src/a/b/c/d/e/user.ts"},
		},
		models.DuplicationGroup{
			CanonicalFile: "packages/shared-foundation/status.ts",
			Duplicates:    []string{"src/status.ts"},
		},
	)

	policy := DefaultPolicy()
	mappings, err := GenerateMappings(r, models.DefaultRewriteOptions(), policy)
	require.NoError(t, err)
	require.NotEmpty(t, mappings)

	for _, m := range mappings {
		assert.GreaterOrEqual(t, m.Confidence, models.ConfidenceFloor)
		assert.LessOrEqual(t, m.Confidence, models.ConfidenceCeiling)
		assert.Greater(t, m.Confidence, models.ConfidenceThreshold)
		assert.True(t, policy.IsTrusted(m.NewPath))
		assert.NotEqual(t, m.OldPath, m.NewPath)
	}
}

func TestGenerateMappingsNilReport(t *testing.T) {
	_, err := GenerateMappings(nil, models.DefaultRewriteOptions(), DefaultPolicy())
	require.Error(t, err)
	assert.Equal(t, models.CodeMappingGenerationFailed, models.CodeOf(err))
}

func TestPolicyIsTrusted(t *testing.T) {
	policy := DefaultPolicy()
	assert.True(t, policy.IsTrusted("../types/foundation.types"))
	assert.True(t, policy.IsTrusted("packages/shared-foundation/user.ts"))
	assert.False(t, policy.IsTrusted("src/utils/helpers.ts"))
}
