package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"remap/core/cache"
	"remap/core/logger"
	"remap/core/models"
	"remap/core/tsparse"
)

// builtinExclude is always skipped regardless of configuration.
var builtinExclude = []string{".git", "coverage", "reports", ".remap"}

var sourceExtensions = []string{".ts", ".tsx"}

// Project is the owned arena of parsed source files for one run, indexed
// by root-relative path. Mutations accumulate in memory until Commit.
type Project struct {
	Root string

	// LoadErrors are per-file read failures tolerated during loading;
	// the rest of the tree is still processed.
	LoadErrors []models.ImportValidationError

	files map[string]*models.SourceFile
	order []string
}

// Load walks root, collects every source file outside the excluded and
// canonical-namespace paths, and parses them. Parsing fans out over a
// bounded worker group (reads and scans are pure and file-scoped); the
// arena itself is assembled after the group completes, so iteration
// order is the deterministic walk order.
func Load(root string, exclude []string, markers []string, pc *cache.ParseCache) (*Project, error) {
	skipDirs := append(append([]string{}, builtinExclude...), exclude...)

	var relPaths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if info.IsDir() {
			for _, ex := range skipDirs {
				if info.Name() == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !hasSourceExtension(path) {
			return nil
		}

		// Files already inside the canonical namespace are never
		// rewritten; including them would create self-rewriting cycles.
		slashed := filepath.ToSlash(relPath)
		for _, marker := range markers {
			if strings.Contains(slashed, marker) {
				return nil
			}
		}

		relPaths = append(relPaths, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project root %s: %w", root, err)
	}

	p := &Project{
		Root:  root,
		files: make(map[string]*models.SourceFile, len(relPaths)),
	}

	results := make([]*models.SourceFile, len(relPaths))
	readErrs := make([]error, len(relPaths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, relPath := range relPaths {
		i, relPath := i, relPath
		g.Go(func() error {
			absPath := filepath.Join(root, relPath)
			content, err := os.ReadFile(absPath)
			if err != nil {
				readErrs[i] = err
				return nil
			}

			slashed := filepath.ToSlash(relPath)
			if pc != nil {
				if imports, ok := pc.Get(slashed, content); ok {
					results[i] = &models.SourceFile{
						Path:    absPath,
						RelPath: slashed,
						Content: content,
						Imports: imports,
					}
					return nil
				}
			}

			sf := tsparse.Scan(absPath, slashed, content)
			if pc != nil {
				pc.Set(slashed, content, sf.Imports)
			}
			results[i] = sf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, relPath := range relPaths {
		if readErrs[i] != nil {
			p.LoadErrors = append(p.LoadErrors, models.ImportValidationError{
				File:     filepath.ToSlash(relPath),
				Message:  fmt.Sprintf("failed to read file: %v", readErrs[i]),
				Severity: models.SeverityError,
			})
			continue
		}
		sf := results[i]
		p.files[sf.RelPath] = sf
		p.order = append(p.order, sf.RelPath)
	}

	logger.Debug("Loaded project %s: %d source file(s), %d load error(s)", root, len(p.order), len(p.LoadErrors))
	return p, nil
}

// Paths returns the relative paths of all loaded files in walk order.
func (p *Project) Paths() []string {
	return p.order
}

// File returns the parsed file at relPath.
func (p *Project) File(relPath string) (*models.SourceFile, bool) {
	f, ok := p.files[relPath]
	return f, ok
}

// Len is the number of loaded files.
func (p *Project) Len() int {
	return len(p.order)
}

// Commit persists every dirty file as one batch, each via
// temp-file-then-rename. Returns the number of files written. A write
// failure aborts the batch; files renamed before the failure stay in
// place.
func (p *Project) Commit() (int, error) {
	written := 0
	for _, relPath := range p.order {
		f := p.files[relPath]
		if !f.Dirty {
			continue
		}

		if err := writeAtomic(f.Path, f.Content); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.RelPath, err)
		}

		f.Dirty = false
		written++
		logger.Debug("Wrote %s", f.RelPath)
	}

	return written, nil
}

func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".remap-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

func hasSourceExtension(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
