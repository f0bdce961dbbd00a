package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kalavine/vslider/pkg/theme"
)

// ThemeWatcher reloads a theme file on change and hands the result to a
// callback. The parent directory is watched rather than the file
// itself, since editors commonly replace files by rename.
type ThemeWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce *Debouncer
	onReload func(theme.Theme)
	done     chan struct{}
}

// WatchTheme starts watching path. onReload runs on the watcher's
// goroutine after each debounced change; parse failures keep the last
// good theme and are logged, not propagated.
func WatchTheme(path string, debounce time.Duration, onReload func(theme.Theme)) (*ThemeWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watcher: add %s: %w", dir, err)
	}

	w := &ThemeWatcher{
		path:     path,
		watcher:  fw,
		debounce: NewDebouncer(debounce),
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *ThemeWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.debounce.Trigger(w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("theme watch error", "err", err)
		}
	}
}

func (w *ThemeWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *ThemeWatcher) reload() {
	th, err := theme.Load(w.path)
	if err != nil {
		slog.Warn("theme reload failed, keeping previous", "path", w.path, "err", err)
		return
	}
	w.onReload(th)
}

// Close stops watching and waits for the event loop to drain.
func (w *ThemeWatcher) Close() error {
	w.debounce.Cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}
