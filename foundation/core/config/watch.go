// File: watch.go
// Title: Configuration File Watching
// Description: Watches a configuration file with fsnotify and invokes a
//              callback after it changes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

// WatchDebounce is how long Watch waits for further events before calling onChange
const WatchDebounce = 100 * time.Millisecond

// Watch calls onChange whenever filePath is written, created or replaced,
// until ctx is cancelled. The parent directory is watched so editors that
// save by renaming are picked up. Watch returns once the watcher is running.
func Watch(ctx context.Context, filePath string, onChange func()) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return hferror.Wrap(err, "failed to resolve config path").
			WithCode(hferror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return hferror.Wrap(err, "failed to create watcher").
			WithCode(hferror.CodeConfigError).
			WithOperation("config.Watch")
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return hferror.Wrap(err, "failed to watch config directory").
			WithCode(hferror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", filePath)
	}

	go watchLoop(ctx, watcher, absPath, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, absPath string, onChange func()) {
	defer watcher.Close()

	// nil until an event arrives; a nil channel never fires
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce = time.After(WatchDebounce)
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}

		case <-debounce:
			debounce = nil
			onChange()
		}
	}
}
