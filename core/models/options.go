package models

// RewriteOptions are the caller-facing knobs for one rewriting run.
type RewriteOptions struct {
	// CanonicalPathsOnly restricts mapping generation to groups whose
	// canonical file lives in a trusted namespace.
	CanonicalPathsOnly bool `json:"canonical_paths_only"`

	// ValidateImports enables the pre-flight compliance check and the
	// per-file validation pass.
	ValidateImports bool `json:"validate_imports"`

	// GenerateReport emits the Markdown run report.
	GenerateReport bool `json:"generate_report"`

	// ValidationLevel is reserved for strictness tuning.
	ValidationLevel string `json:"validation_level"`

	// DryRun computes and reports without persisting tree mutations.
	DryRun bool `json:"dry_run"`
}

// DefaultRewriteOptions mirrors the defaults of the primary caller.
func DefaultRewriteOptions() RewriteOptions {
	return RewriteOptions{
		CanonicalPathsOnly: true,
		ValidateImports:    true,
		GenerateReport:     true,
		ValidationLevel:    "strict",
		DryRun:             false,
	}
}
