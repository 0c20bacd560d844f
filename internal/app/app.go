// Package app wires discovery, the search engine and the run store together.
// It provides the operations behind the CLI: one-shot search and watch mode.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corey/kwscan/internal/adapters/bbolt"
	"github.com/corey/kwscan/internal/adapters/discover"
	"github.com/corey/kwscan/internal/adapters/flock"
	fsw "github.com/corey/kwscan/internal/adapters/fsnotify"
	"github.com/corey/kwscan/internal/domain/search"
	"github.com/corey/kwscan/internal/ports"
	"github.com/google/uuid"
)

// App is the top-level container wiring all components together.
type App struct {
	Config *Config
	Paths  *Paths
	Log    ports.Logger

	// Store is opened lazily by OpenStore; nil until then.
	Store ports.RunStore

	closeStore func() error
	now        func() time.Time
}

// New creates an App for projectRoot.
func New(cfg *Config, projectRoot string, log ports.Logger) *App {
	return &App{
		Config: cfg,
		Paths:  NewPaths(projectRoot),
		Log:    log,
		now:    time.Now,
	}
}

// DBPath returns the configured database path, or the project default.
func (a *App) DBPath() string {
	if a.Config.DBPath != "" {
		return a.Config.DBPath
	}
	return a.Paths.DB
}

// OpenStore opens the run database if it is not open yet.
func (a *App) OpenStore() (ports.RunStore, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	if a.Config.DBPath == "" {
		if err := a.Paths.EnsureDirs(); err != nil {
			return nil, fmt.Errorf("create %s: %w", a.Paths.Root, err)
		}
	}
	store, err := bbolt.NewStore(a.DBPath())
	if err != nil {
		return nil, err
	}
	a.Store = store
	a.closeStore = store.Close
	return store, nil
}

// Close releases the run database, if open.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	err := a.closeStore()
	a.closeStore = nil
	a.Store = nil
	return err
}

// Discover lists the corpus files. A missing or unreadable root is logged
// and yields an empty list, never an error.
func (a *App) Discover() []string {
	files, err := discover.Files(a.Config.Root, discover.Options{
		Extension:   a.Config.Extension,
		Recursive:   a.Config.Recursive,
		ExcludeDirs: a.Config.ExcludeDirs,
	})
	if err != nil {
		a.Log.LogWarn(fmt.Sprintf("discovery failed: %v", err))
		return files
	}
	a.Log.LogInfo(fmt.Sprintf("found %d files in %s", len(files), a.Config.Root))
	return files
}

// Search discovers the corpus, runs the engine and, when configured, saves
// the run. Only an invalid keyword list or a store failure is an error.
func (a *App) Search() (*ports.Run, *search.Report, error) {
	started := a.now()
	files := a.Discover()
	if len(files) == 0 {
		a.Log.LogWarn("no files found to search")
	}

	report, err := search.Run(files, a.Config.Keywords, search.Options{
		Workers:    a.Config.Workers,
		BufferSize: a.Config.BufferSize,
		Logger:     a.Log,
	})
	if err != nil {
		return nil, nil, err
	}
	elapsed := a.now().Sub(started)
	a.Log.LogInfo(fmt.Sprintf("search finished in %s", elapsed.Round(time.Millisecond)))

	root, absErr := filepath.Abs(a.Config.Root)
	if absErr != nil {
		root = a.Config.Root
	}
	run := &ports.Run{
		ID:           uuid.New().String(),
		Root:         root,
		Extension:    a.Config.Extension,
		Keywords:     append([]string(nil), a.Config.Keywords...),
		Workers:      report.Workers,
		BufferSize:   a.Config.BufferSize,
		FilesScanned: report.FilesScanned,
		FilesSkipped: len(report.Skipped),
		Bytes:        report.Bytes,
		StartedAt:    started.UTC(),
		Elapsed:      elapsed,
		Result:       report.Result,
	}

	if a.Config.Save {
		store, err := a.OpenStore()
		if err != nil {
			return run, report, fmt.Errorf("open run store: %w", err)
		}
		if err := store.SaveRun(run); err != nil {
			return run, report, fmt.Errorf("save run: %w", err)
		}
		a.Log.LogDebug(fmt.Sprintf("saved run %s", run.ID))
	}
	return run, report, nil
}

// ErrWatchActive is returned when another watch session holds the project lock.
var ErrWatchActive = errors.New("another watch session is active")

// Watch runs a search, then reruns the whole search each time matching
// files stop changing for the debounce interval. onRun receives every
// outcome. Watch returns when stop is closed.
func (a *App) Watch(stop <-chan struct{}, onRun func(*ports.Run, *search.Report, error)) error {
	lock := flock.New(a.Paths.WatchLock)
	if err := lock.Acquire(); err != nil {
		if errors.Is(err, flock.ErrLocked) {
			return fmt.Errorf("%w: %v", ErrWatchActive, err)
		}
		return err
	}
	defer lock.Release()

	w, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	trigger := make(chan struct{}, 1)
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		select {
		case trigger <- struct{}{}:
		default: // a rerun is already pending
		}
	}
	onChange := func(path string) {
		a.Log.LogDebug(fmt.Sprintf("changed: %s", path))
		mu.Lock()
		defer mu.Unlock()
		if timer == nil {
			timer = time.AfterFunc(a.Config.WatchDebounce, fire)
			return
		}
		timer.Reset(a.Config.WatchDebounce)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	match := func(path string) bool {
		return strings.HasSuffix(filepath.Base(path), a.extension())
	}
	if err := w.Watch(a.Config.Root, a.Config.Recursive, match, onChange); err != nil {
		return fmt.Errorf("watch %s: %w", a.Config.Root, err)
	}
	a.Log.LogInfo(fmt.Sprintf("watching %s for changes", a.Config.Root))

	fire()
	for {
		select {
		case <-stop:
			return nil
		case <-trigger:
			run, report, err := a.Search()
			onRun(run, report, err)
		}
	}
}

func (a *App) extension() string {
	if a.Config.Extension == "" {
		return discover.DefaultExtension
	}
	return a.Config.Extension
}

