package models

// DuplicationGroup is one cluster of interchangeable files: a canonical
// file plus the duplicates that should be retired in its favor.
type DuplicationGroup struct {
	CanonicalFile string   `json:"canonicalFile"`
	Duplicates    []string `json:"duplicates"`
}

// IdenticalSection holds the duplicate groups whose declarations were
// found to be structurally identical.
type IdenticalSection struct {
	Groups []DuplicationGroup `json:"groups"`
}

// AnalysisReport is the upstream duplication-analysis report. Only the
// fields this subsystem consumes are modeled; unknown sections are
// ignored on decode.
type AnalysisReport struct {
	GeneratedAt string           `json:"generatedAt,omitempty"`
	Identical   IdenticalSection `json:"identical"`
}

// Groups returns the duplication groups in report order.
func (r *AnalysisReport) Groups() []DuplicationGroup {
	return r.Identical.Groups
}
