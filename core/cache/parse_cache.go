package cache

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"remap/core/logger"
	"remap/core/models"
)

// CacheFile is where the parse cache persists between runs, relative to
// the project root.
const CacheFile = ".remap/parse-cache.msgpack"

// Entry holds the scanned import statements of one file, keyed by the
// content hash they were derived from.
type Entry struct {
	Path        string                   `msgpack:"path"`
	ContentHash string                   `msgpack:"content_hash"`
	Imports     []models.ImportStatement `msgpack:"imports"`
	CreatedAt   time.Time                `msgpack:"created_at"`
}

type Metrics struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	TotalEntries  int
}

// ParseCache is a content-addressed cache of scan results. All failures
// degrade to a re-parse; the cache is never a source of errors for the
// pipeline.
type ParseCache struct {
	root    string
	entries map[string]*Entry
	metrics Metrics
	mu      sync.RWMutex
}

// Load reads the persisted cache under root. A missing or unreadable
// cache file yields an empty cache.
func Load(root string) *ParseCache {
	pc := &ParseCache{
		root:    root,
		entries: make(map[string]*Entry),
	}

	path := filepath.Join(root, filepath.FromSlash(CacheFile))
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("No parse cache at %s, starting empty", path)
		return pc
	}

	var entries map[string]*Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		logger.Debug("Discarding unreadable parse cache %s: %v", path, err)
		return pc
	}

	pc.entries = entries
	logger.Debug("Loaded parse cache with %d entries", len(entries))
	return pc
}

// Get returns the cached imports for relPath when content still hashes
// to the cached value.
func (pc *ParseCache) Get(relPath string, content []byte) ([]models.ImportStatement, bool) {
	pc.mu.RLock()
	entry, exists := pc.entries[relPath]
	pc.mu.RUnlock()

	if !exists || entry.ContentHash != hashContent(content) {
		pc.bumpMisses()
		return nil, false
	}

	pc.bumpHits()
	return entry.Imports, true
}

// Set stores the scan result for relPath.
func (pc *ParseCache) Set(relPath string, content []byte, imports []models.ImportStatement) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.entries[relPath] = &Entry{
		Path:        relPath,
		ContentHash: hashContent(content),
		Imports:     imports,
		CreatedAt:   time.Now(),
	}
}

// Invalidate drops the entry for relPath.
func (pc *ParseCache) Invalidate(relPath string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, exists := pc.entries[relPath]; exists {
		delete(pc.entries, relPath)
		pc.metrics.Invalidations++
	}
}

// Clear drops every entry.
func (pc *ParseCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.metrics.Invalidations += int64(len(pc.entries))
	pc.entries = make(map[string]*Entry)
}

// Persist writes the cache back to disk.
func (pc *ParseCache) Persist() error {
	pc.mu.RLock()
	data, err := msgpack.Marshal(pc.entries)
	pc.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode parse cache: %w", err)
	}

	path := filepath.Join(pc.root, filepath.FromSlash(CacheFile))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write parse cache: %w", err)
	}

	return nil
}

func (pc *ParseCache) GetMetrics() Metrics {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	metrics := pc.metrics
	metrics.TotalEntries = len(pc.entries)
	return metrics
}

func (pc *ParseCache) LogStats() {
	m := pc.GetMetrics()
	logger.Debug("Parse cache stats: Hits=%d, Misses=%d, Invalidations=%d, Entries=%d",
		m.Hits, m.Misses, m.Invalidations, m.TotalEntries)
}

func (pc *ParseCache) bumpHits() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.metrics.Hits++
}

func (pc *ParseCache) bumpMisses() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.metrics.Misses++
}

func hashContent(content []byte) string {
	return fmt.Sprintf("%x", md5.Sum(content))
}
