package models

// ImportMapping is a directive to replace one import specifier with
// another. Instances are created once by the mapping generator and never
// mutated afterward.
type ImportMapping struct {
	TypeName   string  `json:"type_name"`
	OldPath    string  `json:"old_path"`
	NewPath    string  `json:"new_path"`
	Confidence float64 `json:"confidence"`
}

const (
	// ConfidenceFloor and ConfidenceCeiling bound every generated mapping.
	ConfidenceFloor   = 0.1
	ConfidenceCeiling = 1.0

	// ConfidenceThreshold is the minimum confidence a mapping must exceed
	// to be kept.
	ConfidenceThreshold = 0.5
)

// ClampConfidence forces v into the [ConfidenceFloor, ConfidenceCeiling]
// range.
func ClampConfidence(v float64) float64 {
	if v < ConfidenceFloor {
		return ConfidenceFloor
	}
	if v > ConfidenceCeiling {
		return ConfidenceCeiling
	}
	return v
}
