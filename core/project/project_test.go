package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remap/core/cache"
)

func write(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func defaultMarkers() []string {
	return []string{"types/foundation", "shared-foundation"}
}

func TestLoadWalksAndFilters(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/app.ts", `import { A } from './a';`)
	write(t, root, "src/Button.tsx", `export const Button = null;`)
	write(t, root, "src/types/foundation/user.ts", `export type User = {};`)
	write(t, root, "node_modules/pkg/index.ts", `export {};`)
	write(t, root, "dist/out.ts", `export {};`)
	write(t, root, "README.md", `# readme`)

	p, err := Load(root, []string{"node_modules", "dist", "build"}, defaultMarkers(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.ToSlash(filepath.Join("src", "Button.tsx")),
		filepath.ToSlash(filepath.Join("src", "app.ts")),
	}, p.Paths())
	assert.Empty(t, p.LoadErrors)
}

func TestLoadParsesImports(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/app.ts", "import { A } from './a';\nimport './side';\n")

	p, err := Load(root, nil, defaultMarkers(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())

	f, ok := p.File("src/app.ts")
	require.True(t, ok)
	require.Len(t, f.Imports, 2)
	assert.Equal(t, "./a", f.Imports[0].Specifier)
}

func TestLoadUsesParseCache(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/app.ts", `import { A } from './a';`)

	pc := cache.Load(root)
	_, err := Load(root, nil, defaultMarkers(), pc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pc.GetMetrics().Misses)

	_, err = Load(root, nil, defaultMarkers(), pc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pc.GetMetrics().Hits)
}

func TestLoadToleratesUnreadableFiles(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/good.ts", `import { A } from './a';`)
	require.NoError(t, os.Symlink(filepath.Join(root, "does-not-exist"), filepath.Join(root, "src", "broken.ts")))

	p, err := Load(root, nil, defaultMarkers(), nil)
	require.NoError(t, err)

	require.Len(t, p.LoadErrors, 1)
	assert.Equal(t, "src/broken.ts", p.LoadErrors[0].File)

	_, ok := p.File("src/good.ts")
	assert.True(t, ok)
}

func TestCommitWritesOnlyDirtyFiles(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/app.ts", `import { User } from '../shared/types/user';`)
	write(t, root, "src/other.ts", `import { B } from './b';`)

	p, err := Load(root, nil, defaultMarkers(), nil)
	require.NoError(t, err)

	f, ok := p.File("src/app.ts")
	require.True(t, ok)
	f.ReplaceSpecifier(0, "../types/foundation.types")

	written, err := p.Commit()
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	onDisk, err := os.ReadFile(filepath.Join(root, "src", "app.ts"))
	require.NoError(t, err)
	assert.Equal(t, `import { User } from '../types/foundation.types';`, string(onDisk))

	// Second commit has nothing to do.
	written, err = p.Commit()
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}
