package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"remap/core/logger"
	"remap/core/models"
)

// ReportPath is the fixed location of the duplication-analysis report,
// relative to the project root.
const ReportPath = "analysis-results/duplication-analysis.json"

// LoadAnalysis reads and structurally validates the duplication-analysis
// report under root. The only side effect is a single read.
func LoadAnalysis(root string) (*models.AnalysisReport, error) {
	path := filepath.Join(root, filepath.FromSlash(ReportPath))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewStageError(models.CodeAnalysisLoadFailed,
			fmt.Sprintf("cannot read analysis report at %s", path), err)
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, models.NewStageError(models.CodeAnalysisLoadFailed,
			fmt.Sprintf("cannot parse analysis report at %s", path), err)
	}

	if err := ValidateAnalysis(&report); err != nil {
		return nil, err
	}

	logger.Debug("Loaded analysis report: %d duplication group(s)", len(report.Groups()))
	return &report, nil
}

// ValidateAnalysis checks that every group carries a canonical path and a
// non-empty duplicates list.
func ValidateAnalysis(report *models.AnalysisReport) error {
	for i, group := range report.Groups() {
		if group.CanonicalFile == "" {
			return models.NewStageError(models.CodeAnalysisValidationFailed,
				fmt.Sprintf("group %d has no canonical file", i), nil)
		}
		if len(group.Duplicates) == 0 {
			return models.NewStageError(models.CodeAnalysisValidationFailed,
				fmt.Sprintf("group %d (%s) has no duplicates", i, group.CanonicalFile), nil)
		}
	}
	return nil
}
