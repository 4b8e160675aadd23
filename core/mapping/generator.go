package mapping

import (
	"path"
	"strings"

	"remap/core/logger"
	"remap/core/models"
)

// Confidence scoring: every mapping starts at the base value, gains when
// the destination is trusted, and loses when the duplicate is deeply
// nested (deep paths correlate with stale relative imports).
const (
	confidenceBase         = 0.7
	trustedDestinationBump = 0.2
	deepPathPenalty        = 0.1
	deepPathThreshold      = 4
)

// GenerateMappings converts duplication groups into a flat set of
// import mappings. Groups whose canonical file lies outside the trusted
// namespace are skipped entirely when CanonicalPathsOnly is set: this
// trades recall for precision, migrating only toward trusted
// destinations. Result ordering is group insertion order; equivalent
// mappings from later groups are tolerated (first match wins at rewrite
// time).
func GenerateMappings(report *models.AnalysisReport, opts models.RewriteOptions, policy Policy) ([]models.ImportMapping, error) {
	if report == nil {
		return nil, models.NewStageError(models.CodeMappingGenerationFailed,
			"no analysis report to generate mappings from", nil)
	}

	var mappings []models.ImportMapping

	for _, group := range report.Groups() {
		if opts.CanonicalPathsOnly && !policy.IsTrusted(group.CanonicalFile) {
			logger.Debug("Skipping group %s: canonical file outside trusted namespace", group.CanonicalFile)
			continue
		}

		newPath := policy.CanonicalTarget(group.CanonicalFile)

		for _, duplicate := range group.Duplicates {
			if duplicate == group.CanonicalFile {
				continue
			}

			m := models.ImportMapping{
				TypeName:   typeNameOf(duplicate),
				OldPath:    stripExtension(duplicate),
				NewPath:    newPath,
				Confidence: scoreConfidence(duplicate, newPath, policy),
			}

			if !validateMapping(m, policy) {
				logger.Debug("Rejected mapping %s -> %s (confidence %.2f)", m.OldPath, m.NewPath, m.Confidence)
				continue
			}

			mappings = append(mappings, m)
		}
	}

	logger.Debug("Generated %d import mapping(s)", len(mappings))
	return mappings, nil
}

func scoreConfidence(duplicate, newPath string, policy Policy) float64 {
	confidence := confidenceBase
	if policy.IsTrusted(newPath) {
		confidence += trustedDestinationBump
	}
	if pathDepth(duplicate) > deepPathThreshold {
		confidence -= deepPathPenalty
	}
	return models.ClampConfidence(confidence)
}

// validateMapping is the acceptance gate: all fields populated, the
// specifier actually changes, confidence above threshold, and the
// destination inside the trusted namespace.
func validateMapping(m models.ImportMapping, policy Policy) bool {
	if m.TypeName == "" || m.OldPath == "" || m.NewPath == "" {
		return false
	}
	if m.OldPath == m.NewPath {
		return false
	}
	if m.Confidence <= models.ConfidenceThreshold {
		return false
	}
	return policy.IsTrusted(m.NewPath)
}

// typeNameOf derives the type name from the file's base name, extension
// stripped.
func typeNameOf(filePath string) string {
	base := path.Base(strings.ReplaceAll(filePath, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// stripExtension drops the file extension so the path matches import
// specifiers as they appear in source.
func stripExtension(filePath string) string {
	normalized := strings.ReplaceAll(filePath, "\\", "/")
	return strings.TrimSuffix(normalized, path.Ext(normalized))
}

// pathDepth counts slash-separated segments.
func pathDepth(filePath string) int {
	normalized := strings.ReplaceAll(filePath, "\\", "/")
	depth := 0
	for _, segment := range strings.Split(normalized, "/") {
		if segment != "" && segment != "." {
			depth++
		}
	}
	return depth
}
