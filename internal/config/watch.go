package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 100 * time.Millisecond

// Watch reloads the settings file at path whenever it changes and hands the
// result to onChange. The parent directory is watched so editors that replace
// the file on save are picked up. Watch returns once the watcher is running;
// it stops when ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(Settings, error)) error {
	if onChange == nil {
		return fmt.Errorf("onChange is required")
	}
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	go runWatch(ctx, watcher, path, debounce, onChange)
	return nil
}

func runWatch(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, onChange func(Settings, error)) {
	defer watcher.Close()
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	reload := func() {
		cfg, err := Load(path)
		onChange(cfg, err)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, reload)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			onChange(Settings{}, fmt.Errorf("watch config: %w", err))
		}
	}
}
