package tsparse

import (
	"os"

	"remap/core/logger"
	"remap/core/models"
)

// ScanFile reads path and parses it into a SourceFile.
func ScanFile(path, relPath string) (*models.SourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Scan(path, relPath, src), nil
}

// Scan parses content into a SourceFile tree.
func Scan(path, relPath string, content []byte) *models.SourceFile {
	imports := ScanImports(content)
	logger.Debug("Scanned %s: %d import statement(s)", relPath, len(imports))

	return &models.SourceFile{
		Path:    path,
		RelPath: relPath,
		Content: content,
		Imports: imports,
	}
}

// ScanImports extracts every static import statement from src, in
// source order. Comments, string literals, and template literals are
// skipped so their contents never yield statements. Re-exports, dynamic
// import(), and ambient declarations are deliberately not recognized.
func ScanImports(src []byte) []models.ImportStatement {
	s := &scanner{src: src, line: 1}

	var stmts []models.ImportStatement
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"':
			s.skipString(c)
		case c == '`':
			s.skipTemplate()
		case isIdentStart(c):
			start := s.pos
			word := s.readWord()
			if word == "import" && !s.precededByDot(start) {
				if stmt, ok := s.scanImport(); ok {
					stmts = append(stmts, stmt)
				}
			}
		default:
			s.pos++
		}
	}

	return stmts
}

type scanner struct {
	src  []byte
	pos  int
	line int
}

// scanImport parses one import statement; the "import" keyword has
// already been consumed. Returns false for forms the scanner does not
// recognize (dynamic import, malformed clauses), leaving the position
// for the main loop to resume from.
func (s *scanner) scanImport() (models.ImportStatement, bool) {
	stmtLine := s.line
	s.skipTrivia()

	if s.pos >= len(s.src) {
		return models.ImportStatement{}, false
	}

	// Side-effect-only import: no clause, straight to the specifier.
	if c := s.src[s.pos]; c == '\'' || c == '"' {
		spec, start, end, ok := s.readSpecifier()
		if !ok {
			return models.ImportStatement{}, false
		}
		return models.ImportStatement{
			Specifier:      spec,
			SpecStart:      start,
			SpecEnd:        end,
			Line:           stmtLine,
			SideEffectOnly: true,
		}, true
	}

	// Dynamic import() expression, not a statement.
	if s.src[s.pos] == '(' {
		return models.ImportStatement{}, false
	}

	typeOnly := false
	var bindings []string

	for {
		s.skipTrivia()
		if s.pos >= len(s.src) {
			return models.ImportStatement{}, false
		}

		switch c := s.src[s.pos]; {
		case c == '{':
			bindings = append(bindings, s.readNamedBindings()...)
		case c == '*':
			s.pos++
			s.skipTrivia()
			if s.readWord() == "as" {
				s.skipTrivia()
				if name := s.readWord(); name != "" {
					bindings = append(bindings, name)
				}
			}
		case c == ',':
			s.pos++
		case isIdentStart(c):
			word := s.readWord()
			switch word {
			case "from":
				s.skipTrivia()
				spec, start, end, ok := s.readSpecifier()
				if !ok {
					return models.ImportStatement{}, false
				}
				return models.ImportStatement{
					Specifier: spec,
					SpecStart: start,
					SpecEnd:   end,
					Line:      stmtLine,
					Bindings:  bindings,
					TypeOnly:  typeOnly,
				}, true
			case "type":
				// `import type from 'x'` binds a default named "type";
				// otherwise this is the type-only modifier.
				if !typeOnly && len(bindings) == 0 && s.peekWord() != "from" && s.peekChar() != '\'' && s.peekChar() != '"' {
					typeOnly = true
					continue
				}
				bindings = append(bindings, word)
			default:
				bindings = append(bindings, word)
			}
		default:
			return models.ImportStatement{}, false
		}
	}
}

// readNamedBindings consumes a `{ a, b as c, type D }` clause and
// returns the local names it introduces.
func (s *scanner) readNamedBindings() []string {
	s.pos++ // consume '{'

	var names []string
	for s.pos < len(s.src) {
		s.skipTrivia()
		if s.pos >= len(s.src) {
			break
		}

		c := s.src[s.pos]
		if c == '}' {
			s.pos++
			break
		}
		if c == ',' {
			s.pos++
			continue
		}
		if !isIdentStart(c) {
			s.pos++
			continue
		}

		name := s.readWord()
		if name == "type" {
			// Inline type specifier keyword, unless "type" itself is the
			// imported name (`{ type }` or `{ type as t }`).
			s.skipTrivia()
			if s.pos < len(s.src) && isIdentStart(s.src[s.pos]) && s.peekWord() != "as" {
				name = s.readWord()
			}
		}

		s.skipTrivia()
		if s.peekWord() == "as" {
			s.readWord()
			s.skipTrivia()
			if alias := s.readWord(); alias != "" {
				name = alias
			}
		}

		if name != "" {
			names = append(names, name)
		}
	}

	return names
}

// readSpecifier consumes a quoted module specifier and returns its text
// plus the byte span of the text (quotes excluded).
func (s *scanner) readSpecifier() (spec string, start, end int, ok bool) {
	if s.pos >= len(s.src) {
		return "", 0, 0, false
	}
	quote := s.src[s.pos]
	if quote != '\'' && quote != '"' {
		return "", 0, 0, false
	}

	s.pos++
	start = s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == quote {
			end = s.pos
			s.pos++
			return string(s.src[start:end]), start, end, true
		}
		if c == '\n' {
			// Unterminated specifier.
			return "", 0, 0, false
		}
		s.pos++
	}
	return "", 0, 0, false
}

func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++
		case c == ' ' || c == '\t' || c == '\r':
			s.pos++
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '\n' {
			s.line++
		}
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

func (s *scanner) skipString(quote byte) {
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == quote || c == '\n' {
			if c == '\n' {
				s.line++
			}
			s.pos++
			return
		}
		s.pos++
	}
}

func (s *scanner) skipTemplate() {
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		if c == '\n' {
			s.line++
		}
		if c == '`' {
			s.pos++
			return
		}
		s.pos++
	}
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) readWord() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// peekWord reads the next identifier without advancing.
func (s *scanner) peekWord() string {
	save, saveLine := s.pos, s.line
	s.skipTrivia()
	word := s.readWord()
	s.pos, s.line = save, saveLine
	return word
}

// peekChar returns the next non-trivia byte without advancing, or 0 at
// end of input.
func (s *scanner) peekChar() byte {
	save, saveLine := s.pos, s.line
	s.skipTrivia()
	var c byte
	if s.pos < len(s.src) {
		c = s.src[s.pos]
	}
	s.pos, s.line = save, saveLine
	return c
}

// precededByDot reports whether the token starting at offset is a
// property access (`foo.import`) rather than a keyword.
func (s *scanner) precededByDot(offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		c := s.src[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		return c == '.'
	}
	return false
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
