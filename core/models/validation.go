package models

// Severity classifies a validation finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ImportValidationError records one finding from the per-file validation
// pass. NewImport carries the suggested replacement when one exists.
type ImportValidationError struct {
	File      string   `json:"file"`
	Line      int      `json:"line"`
	OldImport string   `json:"oldImport"`
	NewImport string   `json:"newImport,omitempty"`
	Message   string   `json:"error"`
	Severity  Severity `json:"severity"`
}
