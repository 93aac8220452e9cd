// Package watch re-imports token sources and rewrites exports when they change.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// DefaultDebounce groups bursts of editor writes into one rebuild.
const DefaultDebounce = 200 * time.Millisecond

// Target is an export written on every successful rebuild.
type Target struct {
	Format export.Format
	Path   string
}

// Result describes one rebuild.
type Result struct {
	Tokens  tokens.ColorSet
	Written []string
	Err     error
}

// Options configures a Watcher.
type Options struct {
	Debounce  time.Duration
	Discover  importer.DiscoverOptions
	Targets   []Target
	OnRebuild func(Result)
}

// Watcher watches a token file or directory.
//
// **Usage:**
//
//	w := watch.New(im, watch.Options{Targets: targets}, logger)
//	if _, err := w.Start("design/tokens.json"); err != nil {
//	    return err
//	}
//	defer w.Stop()
type Watcher struct {
	im      *importer.Importer
	options Options
	logger  *slog.Logger

	watcher *fsnotify.Watcher
	root    string
	isDir   bool
	outputs map[string]bool

	debounceMu sync.Mutex
	timer      *time.Timer

	rebuilds atomic.Int64
	buildMu  sync.Mutex

	stopChan chan struct{}
	started  bool
	stopped  bool
	mu       sync.Mutex
}

// New creates a Watcher. Nothing is watched until Start.
func New(im *importer.Importer, options Options, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}
	return &Watcher{
		im:       im,
		options:  options,
		logger:   logger,
		outputs:  make(map[string]bool),
		stopChan: make(chan struct{}),
	}
}

// Start performs an initial rebuild and then watches root in the background.
// root may be a single token file or a directory searched with Discover.
func (w *Watcher) Start(root string) (Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return Result{}, fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return Result{}, fmt.Errorf("watcher already started")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	w.root, w.isDir = abs, info.IsDir()
	w.excludeOutputs()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return Result{}, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = fsw

	if w.isDir {
		err = filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if path != abs && ignoredDir(d.Name()) {
				return filepath.SkipDir
			}
			if err := fsw.Add(path); err != nil {
				w.logger.Warn("failed to watch directory", "path", path, "error", err)
			}
			return nil
		})
	} else {
		// Editors often replace files on save, so watch the parent directory.
		err = fsw.Add(filepath.Dir(abs))
	}
	if err != nil {
		_ = fsw.Close()
		return Result{}, fmt.Errorf("failed to setup watches: %w", err)
	}

	result := w.Rebuild()
	w.started = true
	go w.eventLoop()

	w.logger.Info("token watcher started", "root", abs, "targets", len(w.options.Targets))
	return result, nil
}

// excludeOutputs stops targets inside a watched directory from being
// imported back as sources.
func (w *Watcher) excludeOutputs() {
	if w.isDir && w.options.Discover.Exclude == nil {
		w.options.Discover.Exclude = append([]string(nil), importer.DefaultExclude...)
	}
	for _, t := range w.options.Targets {
		abs, err := filepath.Abs(t.Path)
		if err != nil {
			continue
		}
		w.outputs[abs] = true
		if rel, err := filepath.Rel(w.root, abs); err == nil && w.isDir {
			w.options.Discover.Exclude = append(w.options.Discover.Exclude, filepath.ToSlash(rel))
		}
	}
}

// Stop stops watching. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.debounceMu.Unlock()

	var err error
	if w.watcher != nil {
		err = w.watcher.Close()
	}
	w.logger.Info("token watcher stopped", "rebuilds", w.rebuilds.Load())
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if w.outputs[path] {
		return
	}

	if event.Op&fsnotify.Create == fsnotify.Create && w.isDir {
		if info, err := os.Stat(path); err == nil && info.IsDir() && !ignoredDir(info.Name()) {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch directory", "path", path, "error", err)
			}
			return
		}
	}

	if !w.isDir && path != w.root {
		return
	}
	if importer.DetectKind(path) == importer.KindUnknown {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("token file event", "op", event.Op.String(), "file", path)
	w.im.Invalidate(path)
	w.scheduleRebuild()
}

// scheduleRebuild restarts the debounce timer.
func (w *Watcher) scheduleRebuild() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.options.Debounce, func() {
		w.debounceMu.Lock()
		w.timer = nil
		w.debounceMu.Unlock()

		select {
		case <-w.stopChan:
			return
		default:
		}
		w.Rebuild()
	})
}

// Rebuild re-imports the sources and, if that succeeds, writes every target.
// A failed import leaves the previous outputs in place.
func (w *Watcher) Rebuild() Result {
	w.buildMu.Lock()
	defer w.buildMu.Unlock()

	start := time.Now()
	var (
		result Result
		set    tokens.ColorSet
		err    error
	)
	if w.isDir {
		set, err = w.im.ImportDir(w.root, w.options.Discover)
	} else {
		set, err = w.im.ImportFile(w.root)
	}
	result.Tokens = set

	if err != nil {
		result.Err = err
		w.logger.Warn("rebuild failed, outputs left unchanged", "error", err)
	} else {
		var errs []error
		for _, t := range w.options.Targets {
			if err := write(t, set); err != nil {
				errs = append(errs, err)
				continue
			}
			result.Written = append(result.Written, t.Path)
		}
		result.Err = errors.Join(errs...)
	}

	w.rebuilds.Add(1)
	w.logger.Info("rebuilt tokens",
		"tokens", len(result.Tokens),
		"written", len(result.Written),
		"ms", time.Since(start).Milliseconds())

	if w.options.OnRebuild != nil {
		w.options.OnRebuild(result)
	}
	return result
}

func write(t Target, set tokens.ColorSet) error {
	out, err := export.Render(t.Format, set)
	if err != nil {
		return fmt.Errorf("render %s: %w", t.Path, err)
	}
	if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", t.Path, err)
	}
	if err := os.WriteFile(t.Path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	return nil
}

func ignoredDir(name string) bool {
	switch name {
	case "node_modules", ".git", "dist", "build", ".next":
		return true
	}
	return false
}

// Stats reports watcher state.
type Stats struct {
	Rebuilds       int64
	PendingRebuild bool
	IsRunning      bool
}

// GetStats returns watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.debounceMu.Lock()
	pending := w.timer != nil
	w.debounceMu.Unlock()

	w.mu.Lock()
	running := w.started && !w.stopped
	w.mu.Unlock()

	return Stats{Rebuilds: w.rebuilds.Load(), PendingRebuild: pending, IsRunning: running}
}
