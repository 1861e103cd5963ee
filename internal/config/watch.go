package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

const defaultReloadDebounce = 300 * time.Millisecond

// PrefsWatcher reloads the preferences file when it changes on disk
// and hands the result to onChange.
type PrefsWatcher struct {
	logger   *zap.Logger
	store    domain.PreferencesStore
	path     string
	onChange func(context.Context, domain.Preferences) error
	debounce time.Duration

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup

	timerMu sync.Mutex
	timer   *time.Timer
}

// NewPrefsWatcher creates a watcher for the preferences file at path
func NewPrefsWatcher(
	logger *zap.Logger,
	store domain.PreferencesStore,
	path string,
	onChange func(context.Context, domain.Preferences) error,
) *PrefsWatcher {
	return &PrefsWatcher{
		logger:   logger,
		store:    store,
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: defaultReloadDebounce,
		done:     make(chan struct{}),
	}
}

// Start watches the directory holding the preferences file.
// Editors replace files by rename, so the directory is watched rather than the file.
func (w *PrefsWatcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.fsWatcher = fsWatcher

	w.wg.Add(1)
	go w.processEvents()

	w.logger.Info("Watching preferences", zap.String("path", w.path))
	return nil
}

// Stop stops watching and cancels a pending reload
func (w *PrefsWatcher) Stop() error {
	if w.fsWatcher == nil {
		return nil
	}

	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	w.fsWatcher = nil
	return err
}

func (w *PrefsWatcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Preferences watcher error", zap.Error(err))
		}
	}
}

func (w *PrefsWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers editors that write a temp file and move it over the target
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("Preferences file changed", zap.Stringer("op", event.Op))

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload reads the file and applies it
func (w *PrefsWatcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	prefs, err := w.store.Load()
	if err != nil {
		w.logger.Warn("Could not reload preferences", zap.Error(err))
		return
	}

	if err := w.onChange(context.Background(), prefs); err != nil {
		w.logger.Warn("Rejected preferences change", zap.Error(err))
	}
}
