package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"remap/core/logger"
)

const debounceDelay = 500 * time.Millisecond

// Watcher re-triggers the rewriting pipeline when source files change.
// Events are debounced so one editor save burst produces one run.
type Watcher struct {
	// OnChange receives the batch of changed relative paths after the
	// debounce window closes.
	OnChange func(changed []string) error

	watcher  *fsnotify.Watcher
	root     string
	exclude  []string
	mu       sync.Mutex
	debounce *time.Timer
	pending  map[string]struct{}
}

func New(root string, exclude []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		OnChange: func([]string) error { return fmt.Errorf("OnChange not set") },
		watcher:  fsw,
		root:     root,
		exclude:  append([]string{".git", "reports", ".remap"}, exclude...),
		pending:  make(map[string]struct{}),
	}, nil
}

// Watch blocks, dispatching debounced change batches to OnChange until
// the watcher is closed.
func (w *Watcher) Watch() error {
	if err := w.addWatchersRecursively(w.root); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if w.shouldExcludePath(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					w.watcher.Add(event.Name)
					continue
				}
			}

			if !isSourceFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)
			w.recordChange(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	return w.watcher.Close()
}

func (w *Watcher) recordChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if relPath, err := filepath.Rel(w.root, path); err == nil {
		w.pending[filepath.ToSlash(relPath)] = struct{}{}
	}

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(changed) == 0 {
		return
	}

	logger.Debug("Changes detected in %d file(s), re-running", len(changed))
	if err := w.OnChange(changed); err != nil {
		logger.Error("Watcher.OnChange failed: %v", err)
	}
}

func (w *Watcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	relPath = filepath.Clean(relPath)

	for _, excludePath := range w.exclude {
		excludePath = filepath.Clean(excludePath)
		if relPath == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && w.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}
		return nil
	})
}

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx")
}
