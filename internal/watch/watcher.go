// SPDX-License-Identifier: MPL-2.0

// Package watch provides file-watching with debounced rebuilds.
//
// It monitors library source trees for changes and invokes a callback after a
// configurable debounce period. Events within the debounce window are
// coalesced so the callback fires once with the full set of changed paths,
// which keeps a single save-all in an editor from triggering a rebuild per
// file.
package watch

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"ng-packagr/pkg/types"
)

// defaultDebounce is the quiet period applied when Config.Debounce is unset.
// Editors often write, rename and chmod on a single save; half a second lets
// that burst settle into one rebuild.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores are always excluded from watching, on top of any
// user-supplied ignore globs. dist/** matters most here: the builder writes
// packaged artifacts there, and watching them would retrigger the build that
// produced them.
var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/dist/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

// ErrInvalidWatchConfig is the sentinel error wrapped by InvalidWatchConfigError.
var ErrInvalidWatchConfig = fmt.Errorf("invalid watch configuration")

type (
	// Config describes what to watch and how to react.
	Config struct {
		// Patterns select which files trigger callbacks, as
		// doublestar-compatible globs ("**/*.ts"). An empty slice watches
		// every non-ignored file.
		Patterns []types.GlobPattern

		// Ignore lists additional globs whose matches never trigger
		// callbacks, merged with the built-in defaults. Callers typically
		// add the destination directory of the package being built.
		Ignore []types.GlobPattern

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative falls back to defaultDebounce.
		Debounce time.Duration

		// ClearScreen clears the terminal with ANSI escapes before each
		// callback. No terminal detection is performed; enable it only when
		// Stdout is a real terminal.
		ClearScreen bool

		// BaseDir is the root of the watched tree and the base all patterns
		// resolve against. Empty means the current working directory.
		BaseDir types.FilesystemPath

		// OnChange receives the deduplicated changed paths, relative to
		// BaseDir, once the debounce window closes. A nil callback is a
		// no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Stdout and Stderr receive informational and error output. nil
		// values default to os.Stdout / os.Stderr.
		Stdout io.Writer
		Stderr io.Writer
	}

	// InvalidWatchConfigError is returned by Config.Validate when one or more
	// fields are invalid. FieldErrors holds the per-field validation errors.
	InvalidWatchConfigError struct {
		FieldErrors []error
	}

	// Watcher monitors a directory tree and fires a debounced callback when
	// matching files change. Run must be called exactly once.
	Watcher struct {
		fsw         *fsnotify.Watcher
		patterns    []string
		ignores     []string
		onChange    func(ctx context.Context, changed []string) error
		stdout      io.Writer
		stderr      io.Writer
		debounce    time.Duration
		baseDir     string
		clearScreen bool
		started     atomic.Bool
	}
)

func (e *InvalidWatchConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid watch configuration: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid watch configuration: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWatchConfig for errors.Is compatibility.
func (e *InvalidWatchConfigError) Unwrap() error { return ErrInvalidWatchConfig }

// Validate checks the domain-typed fields. Empty pattern slices and an empty
// BaseDir are fine; any value that is present must validate. Field errors are
// collected so one report covers every problem.
func (c Config) Validate() error {
	var fieldErrors []error

	for _, pat := range c.Patterns {
		if err := pat.Validate(); err != nil {
			fieldErrors = append(fieldErrors, fmt.Errorf("watch pattern: %w", err))
		}
	}
	for _, pat := range c.Ignore {
		if err := pat.Validate(); err != nil {
			fieldErrors = append(fieldErrors, fmt.Errorf("ignore pattern: %w", err))
		}
	}
	if c.BaseDir != "" {
		if err := c.BaseDir.Validate(); err != nil {
			fieldErrors = append(fieldErrors, fmt.Errorf("base dir: %w", err))
		}
	}

	if len(fieldErrors) > 0 {
		return &InvalidWatchConfigError{FieldErrors: fieldErrors}
	}
	return nil
}

// changeQueue accumulates changed paths between callback firings. The mutex
// guards both the path set and the timer, which is re-armed by the event loop
// and read by the flush callback.
type changeQueue struct {
	mu    sync.Mutex
	paths map[string]struct{}
	timer *time.Timer
}

// push records a changed path and arms (or re-arms) the debounce timer.
func (q *changeQueue) push(path string, delay time.Duration, flush func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paths[path] = struct{}{}
	if q.timer == nil {
		q.timer = time.AfterFunc(delay, flush)
	} else {
		q.timer.Reset(delay)
	}
}

// drain removes and returns every queued path, or nil when nothing is queued.
func (q *changeQueue) drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.paths) == 0 {
		return nil
	}
	changed := slices.Collect(maps.Keys(q.paths))
	clear(q.paths)
	return changed
}

// rearm schedules another flush without recording a new path, so queued
// paths survive a flush that found the previous callback still running.
func (q *changeQueue) rearm(delay time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.timer != nil {
		q.timer.Reset(delay)
	}
}

// stop halts the debounce timer and drains its channel.
func (q *changeQueue) stop() {
	q.mu.Lock()
	t := q.timer
	q.mu.Unlock()
	if t != nil && !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// New creates a Watcher for cfg. It validates the configuration, resolves
// BaseDir to an absolute path, sets up the fsnotify watcher and registers
// every non-ignored directory under BaseDir.
func New(cfg Config) (*Watcher, error) {
	// Invalid globs fail here rather than silently never matching.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	baseDir := cfg.BaseDir.String()
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: look up working directory: %w", err)
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: make base directory absolute: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: start fsnotify: %w", err)
	}

	w := &Watcher{
		fsw:         fsw,
		patterns:    globStrings(cfg.Patterns),
		ignores:     append(slices.Clone(defaultIgnores), globStrings(cfg.Ignore)...),
		onChange:    cfg.OnChange,
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
		debounce:    cfg.Debounce,
		baseDir:     absBase,
		clearScreen: cfg.ClearScreen,
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}
	if w.stdout == nil {
		w.stdout = os.Stdout
	}
	if w.stderr == nil {
		w.stderr = os.Stderr
	}

	if err := w.watchTree(); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			fmt.Fprintf(w.stderr, "watch: close after init failure: %v\n", closeErr)
		}
		return nil, err
	}
	return w, nil
}

// globStrings converts typed glob patterns to their string form.
func globStrings(pats []types.GlobPattern) []string {
	out := make([]string, 0, len(pats))
	for _, pat := range pats {
		out = append(out, pat.String())
	}
	return out
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks for
// matching filesystem events. Clean cancellation returns nil; fatal watcher
// errors propagate. A second call returns an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	queue := &changeQueue{paths: make(map[string]struct{})}
	var busy atomic.Bool

	// flush runs on the timer goroutine. It can fire after cancellation, so
	// the ctx check is a best-effort guard; a narrow window remains between
	// the check and the callback, which receives ctx for that reason. The
	// busy flag keeps a rebuild that outlasts the debounce period from
	// overlapping with the next one.
	flush := func() {
		if ctx.Err() != nil {
			return
		}
		if !busy.CompareAndSwap(false, true) {
			fmt.Fprintf(w.stderr, "watch: skipping re-execution (previous run still in progress)\n")
			queue.rearm(w.debounce)
			return
		}
		defer busy.Store(false)

		changed := queue.drain()
		if len(changed) == 0 {
			return
		}
		w.dispatch(ctx, changed)
	}

	defer func() {
		queue.stop()
		if closeErr := w.fsw.Close(); closeErr != nil {
			fmt.Fprintf(w.stderr, "watch: close watcher: %v\n", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed")
			}
			rel, match := w.relevant(evt.Name)
			if !match {
				continue
			}
			// Extend the watch to directories created after startup.
			if evt.Has(fsnotify.Create) {
				w.trackNewDir(evt.Name)
			}
			queue.push(rel, w.debounce, flush)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed")
			}
			// Resource exhaustion leaves the watcher broken; anything else
			// is logged and watching continues. See watcher_fatal_*.go.
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: watcher failed: %w", err)
			}
			fmt.Fprintf(w.stderr, "watch: watcher error: %v\n", err)
		}
	}
}

// dispatch clears the terminal when configured and hands the changed paths
// to the callback.
func (w *Watcher) dispatch(ctx context.Context, changed []string) {
	if w.clearScreen {
		// ANSI: clear screen, cursor to top-left.
		fmt.Fprint(w.stdout, "\033[2J\033[H")
	}
	if w.onChange == nil {
		return
	}
	if err := w.onChange(ctx, changed); err != nil {
		fmt.Fprintf(w.stderr, "watch: change callback failed: %v\n", err)
	}
}

// relevant converts an event path to its BaseDir-relative form and reports
// whether it passes the ignore and pattern filters.
func (w *Watcher) relevant(name string) (string, bool) {
	rel, err := filepath.Rel(w.baseDir, name)
	if err != nil {
		rel = name
	}
	if w.isIgnored(rel) {
		return "", false
	}
	if len(w.patterns) > 0 && !matchesAny(w.patterns, rel) {
		return "", false
	}
	return rel, true
}

// watchTree registers every non-ignored directory under BaseDir with the
// fsnotify watcher. Directories are registered regardless of the watch
// patterns; pattern filtering happens per event, so "**/*.ts" still sees
// files anywhere in the tree.
func (w *Watcher) watchTree() error {
	walkErr := filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			// A permission error on a single directory (a .git objects
			// pack, say) should not abort the walk. Log the path so the gap
			// in coverage is visible.
			fmt.Fprintf(w.stderr, "watch: cannot walk %q: %v\n", path, walkDirErr)
			return nil //nolint:nilerr // unreadable entries are logged and skipped
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.baseDir, path)
		if relErr != nil {
			return nil //nolint:nilerr // paths outside the base cannot match any glob
		}

		// Do not descend into ignored trees at all.
		if w.isIgnored(rel) || w.isIgnored(rel+"/") {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: register %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: scan watched tree: %w", walkErr)
	}
	return nil
}

// trackNewDir registers path if it is a non-ignored directory, extending the
// recursive watch to directories created after the initial walk.
func (w *Watcher) trackNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return
	}
	if w.isIgnored(rel) || w.isIgnored(rel+"/") {
		return
	}
	if addErr := w.fsw.Add(path); addErr != nil {
		fmt.Fprintf(w.stderr, "watch: register new directory %q: %v\n", path, addErr)
	}
}

// isIgnored reports whether rel matches any ignore glob.
func (w *Watcher) isIgnored(rel string) bool {
	return matchesAny(w.ignores, rel)
}

// matchesAny reports whether rel, normalised to forward slashes, matches any
// of the given doublestar globs.
func matchesAny(patterns []string, rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}
