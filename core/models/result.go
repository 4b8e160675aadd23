package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the terminal (or in-flight) state of one transformation run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// TransformationResult is the durable record of one orchestrator run.
// The orchestrator exclusively owns an instance for the duration of its
// run; consumers receive value copies.
type TransformationResult struct {
	ID                    string                  `json:"id"`
	Status                Status                  `json:"status"`
	Strategy              string                  `json:"strategy"`
	ChangedFiles          []string                `json:"changed_files"`
	Errors                []ImportValidationError `json:"errors"`
	TotalFiles            int                     `json:"total_files"`
	ModifiedFiles         int                     `json:"modified_files"`
	TotalImportsRewritten int                     `json:"total_imports_rewritten"`
	StartTime             time.Time               `json:"start_time"`
	EndTime               time.Time               `json:"end_time"`
}

// NewTransformationResult returns a pending result stamped with a fresh
// operation id.
func NewTransformationResult(strategy string) *TransformationResult {
	return &TransformationResult{
		ID:        uuid.NewString(),
		Status:    StatusPending,
		Strategy:  strategy,
		StartTime: time.Now(),
	}
}

// Elapsed is the wall-clock duration of the run. Zero until EndTime is
// set.
func (r *TransformationResult) Elapsed() time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// SuccessRate is modified files over total files as a percentage, zero
// when nothing was scanned.
func (r *TransformationResult) SuccessRate() float64 {
	if r.TotalFiles == 0 {
		return 0
	}
	return float64(r.ModifiedFiles) / float64(r.TotalFiles) * 100
}
