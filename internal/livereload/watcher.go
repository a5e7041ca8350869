package livereload

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a burst of events is collected before the
// change callback fires
const DefaultDebounce = 100 * time.Millisecond

// WatcherConfig configures a Watcher
type WatcherConfig struct {
	// Roots are directories (watched recursively) or single files
	Roots []string

	// Patterns are doublestar globs matched against paths relative to a
	// directory root. Single-file roots always match.
	Patterns []string

	Debounce time.Duration
}

// Watcher reports debounced file changes under its roots
type Watcher struct {
	fsw      *fsnotify.Watcher
	dirs     []string
	files    map[string]bool
	patterns []string
	delay    time.Duration
	onChange func(changed []string)
	logger   *slog.Logger
}

// NewWatcher starts watching cfg.Roots. onChange receives the sorted,
// de-duplicated list of paths changed in one burst.
func NewWatcher(cfg WatcherConfig, onChange func(changed []string), logger *slog.Logger) (*Watcher, error) {
	for _, pattern := range cfg.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid watch pattern %q", pattern)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		patterns: cfg.Patterns,
		delay:    cfg.Debounce,
		onChange: onChange,
		logger:   logger.With("component", "watcher"),
	}
	if w.delay <= 0 {
		w.delay = DefaultDebounce
	}

	for _, root := range cfg.Roots {
		if err := w.addRoot(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRoot(root string) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	if !info.IsDir() {
		w.files[root] = true
		if err := w.fsw.Add(filepath.Dir(root)); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	}

	w.dirs = append(w.dirs, root)
	return w.addTree(root)
}

// addTree watches dir and every non-hidden subdirectory
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Match reports whether a changed path is relevant
func (w *Watcher) Match(path string) bool {
	path, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if w.files[path] {
		return true
	}

	for _, dir := range w.dirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range w.patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
		}
	}
	return false
}

// Run delivers change bursts until ctx is cancelled. The underlying
// watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	debounce := time.NewTimer(w.delay)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && w.underDir(event.Name) {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			if event.Has(fsnotify.Chmod) || !w.Match(event.Name) {
				continue
			}

			pending[event.Name] = true
			debounce.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)

		case <-debounce.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)

			w.logger.Debug("files changed", "paths", changed)
			if w.onChange != nil {
				w.onChange(changed)
			}
		}
	}
}

// Close stops watching without running
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) underDir(path string) bool {
	for _, dir := range w.dirs {
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}
