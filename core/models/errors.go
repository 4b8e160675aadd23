package models

import (
	"errors"
	"fmt"
)

// Stage error codes. Load, validation, mapping, and compliance failures
// are fatal and abort the run before any file is touched; report
// failures are logged and tolerated.
const (
	CodeAnalysisLoadFailed        = "ANALYSIS_LOAD_FAILED"
	CodeAnalysisValidationFailed  = "ANALYSIS_VALIDATION_FAILED"
	CodeMappingGenerationFailed   = "MAPPING_GENERATION_FAILED"
	CodeCanonicalComplianceFailed = "CANONICAL_COMPLIANCE_VALIDATION_FAILED"
	CodeReportGenerationFailed    = "REPORT_GENERATION_FAILED"
	CodeImportRewritingFailed     = "IMPORT_REWRITING_FAILED"
)

// StageError is a typed failure from one pipeline stage. The orchestrator
// inspects Code to decide abort-vs-continue; callers get a
// machine-readable code plus a human-readable message instead of a raw
// stack trace.
type StageError struct {
	Code    string
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with a stage code and message.
func NewStageError(code, message string, err error) *StageError {
	return &StageError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the stage code from err, or "" when err carries none.
func CodeOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
