package models

// ImportStatement is one import node of a parsed source file. SpecStart
// and SpecEnd are byte offsets of the specifier text within the file
// content, quotes excluded.
type ImportStatement struct {
	Specifier      string   `msgpack:"specifier"`
	SpecStart      int      `msgpack:"spec_start"`
	SpecEnd        int      `msgpack:"spec_end"`
	Line           int      `msgpack:"line"`
	Bindings       []string `msgpack:"bindings"`
	TypeOnly       bool     `msgpack:"type_only"`
	SideEffectOnly bool     `msgpack:"side_effect_only"`
}

// HasBindings reports whether the statement names at least one imported
// symbol (default, named, or namespace).
func (s *ImportStatement) HasBindings() bool {
	return !s.SideEffectOnly && len(s.Bindings) > 0
}

// SourceFile is the parsed, mutable representation of one source file.
// Imports are ordered by position; mutation goes through
// ReplaceSpecifier so spans stay consistent.
type SourceFile struct {
	Path    string
	RelPath string
	Content []byte
	Imports []ImportStatement
	Dirty   bool
}

// ReplaceSpecifier splices newPath over the specifier of import i,
// shifts the spans of all following imports, and marks the file dirty.
func (f *SourceFile) ReplaceSpecifier(i int, newPath string) {
	stmt := &f.Imports[i]
	delta := len(newPath) - (stmt.SpecEnd - stmt.SpecStart)

	buf := make([]byte, 0, len(f.Content)+delta)
	buf = append(buf, f.Content[:stmt.SpecStart]...)
	buf = append(buf, newPath...)
	buf = append(buf, f.Content[stmt.SpecEnd:]...)
	f.Content = buf

	stmt.Specifier = newPath
	stmt.SpecEnd = stmt.SpecStart + len(newPath)

	for j := i + 1; j < len(f.Imports); j++ {
		f.Imports[j].SpecStart += delta
		f.Imports[j].SpecEnd += delta
	}

	f.Dirty = true
}
