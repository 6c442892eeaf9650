// Package watch reports files that are created or rewritten under a directory
// tree, coalescing bursts of editor writes into a single notification.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Sentinel errors for watch operations.
var (
	ErrNotDirectory  = errors.New("watch root is not a directory")
	ErrWatcherClosed = errors.New("watcher is closed")
)

// DefaultDebounce is the quiet period after the last write to a file before
// it is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a directory tree. Hidden entries (names starting with ".")
// and excluded directories are never reported.
type Watcher struct {
	root     string
	exclude  []string
	match    func(path string) bool
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	closed  bool
	started bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithExclude skips dir and everything below it.
func WithExclude(dir string) Option {
	return func(w *Watcher) {
		if dir != "" {
			w.exclude = append(w.exclude, filepath.Clean(dir))
		}
	}
}

// WithFilter reports only files for which match returns true.
func WithFilter(match func(path string) bool) Option {
	return func(w *Watcher) {
		if match != nil {
			w.match = match
		}
	}
}

// WithDebounce sets the quiet period. Zero reports every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher for root. Nothing is watched until Watch is called.
func New(root string, opts ...Option) *Watcher {
	w := &Watcher{
		root:     filepath.Clean(root),
		match:    func(string) bool { return true },
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching and returns a channel of changed file paths. The
// channel is closed when ctx is done or the watcher is closed. Directories
// created later are watched as they appear.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrWatcherClosed
	}
	if w.started {
		return nil, errors.New("watch already started")
	}

	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, w.root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.addTree(fsw, w.root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.fsw = fsw
	w.started = true

	out := make(chan string)
	go w.loop(ctx, fsw, out)
	return out, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- string) {
	defer close(out)

	pending := make(map[string]struct{})
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	flush := func() bool {
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		clear(pending)
		slices.Sort(paths)

		for _, p := range paths {
			select {
			case out <- p:
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if w.isNewDir(ev) {
				if err := w.addTree(fsw, ev.Name); err != nil {
					w.logger.Warn("watching new directory", "path", ev.Name, "error", err)
				}
				continue
			}
			path, ok := w.handleEvent(ev)
			if !ok {
				continue
			}
			pending[path] = struct{}{}
			if w.debounce == 0 {
				if !flush() {
					return
				}
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if !flush() {
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// handleEvent returns the path to report for ev, if any. Only creations and
// writes of regular, visible, matching files count; removals, renames and
// permission changes do not.
func (w *Watcher) handleEvent(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return "", false
	}
	if w.ignored(ev.Name) {
		return "", false
	}

	info, err := os.Stat(ev.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	if !w.match(ev.Name) {
		return "", false
	}
	return ev.Name, true
}

func (w *Watcher) isNewDir(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) || w.ignored(ev.Name) {
		return false
	}
	info, err := os.Stat(ev.Name)
	return err == nil && info.IsDir()
}

// addTree adds dir and its visible, non-excluded subdirectories to fsw.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.ignored(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// ignored reports whether path is hidden relative to the root or lies in an
// excluded directory.
func (w *Watcher) ignored(path string) bool {
	clean := filepath.Clean(path)
	for _, ex := range w.exclude {
		if clean == ex || strings.HasPrefix(clean, ex+string(filepath.Separator)) {
			return true
		}
	}

	rel, err := filepath.Rel(w.root, clean)
	if err != nil {
		return false
	}
	return isHidden(rel)
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
