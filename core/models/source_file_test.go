package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() *SourceFile {
	content := []byte(`import { A } from './aa';
import { B } from './bb';
`)
	return &SourceFile{
		Path:    "/tmp/sample.ts",
		RelPath: "sample.ts",
		Content: content,
		Imports: []ImportStatement{
			{Specifier: "./aa", SpecStart: 19, SpecEnd: 23, Line: 1, Bindings: []string{"A"}},
			{Specifier: "./bb", SpecStart: 45, SpecEnd: 49, Line: 2, Bindings: []string{"B"}},
		},
	}
}

func TestReplaceSpecifierSplicesAndShiftsSpans(t *testing.T) {
	f := sampleFile()

	f.ReplaceSpecifier(0, "../types/foundation.types")

	assert.Equal(t, "import { A } from '../types/foundation.types';\nimport { B } from './bb';\n", string(f.Content))
	assert.True(t, f.Dirty)
	assert.Equal(t, "../types/foundation.types", f.Imports[0].Specifier)

	// The second statement's span must still point at its specifier.
	second := f.Imports[1]
	assert.Equal(t, "./bb", string(f.Content[second.SpecStart:second.SpecEnd]))

	f.ReplaceSpecifier(1, "../types/foundation.types")
	assert.Equal(t, "import { A } from '../types/foundation.types';\nimport { B } from '../types/foundation.types';\n", string(f.Content))
}

func TestReplaceSpecifierShorterPath(t *testing.T) {
	f := sampleFile()

	f.ReplaceSpecifier(0, "./a")

	require.Equal(t, "import { A } from './a';\nimport { B } from './bb';\n", string(f.Content))
	second := f.Imports[1]
	assert.Equal(t, "./bb", string(f.Content[second.SpecStart:second.SpecEnd]))
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceFloor, ClampConfidence(0.0))
	assert.Equal(t, ConfidenceCeiling, ClampConfidence(1.5))
	assert.Equal(t, 0.8, ClampConfidence(0.8))
}
