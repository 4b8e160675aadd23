package mapping

import "strings"

// Canonical virtual targets. Every accepted mapping points at one of
// these two specifiers.
const (
	FoundationTarget   = "../types/foundation.types"
	FoundationUITarget = "../types/foundation.ui.types"
)

// Policy is the canonical-path policy: the trusted namespace markers and
// the marker selecting the UI variant of the canonical target.
type Policy struct {
	Markers  []string
	UIMarker string
}

// DefaultPolicy returns the built-in trusted namespace.
func DefaultPolicy() Policy {
	return Policy{
		Markers:  []string{"types/foundation", "shared-foundation"},
		UIMarker: "foundation.ui",
	}
}

// IsTrusted reports whether path lies within the trusted canonical
// namespace, by substring match against the marker list.
func (p Policy) IsTrusted(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, marker := range p.Markers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// CanonicalTarget normalizes a group's canonical file into one of the
// two canonical virtual targets.
func (p Policy) CanonicalTarget(canonicalFile string) string {
	if p.UIMarker != "" && strings.Contains(canonicalFile, p.UIMarker) {
		return FoundationUITarget
	}
	return FoundationTarget
}
