package termview

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// FileChangedMsg reports that the watched scene file was written. The model
// loads the file itself, so scenes are only built on the program goroutine.
type FileChangedMsg struct {
	Path string
}

// Watch passes a FileChangedMsg to send whenever the file at path changes,
// until ctx is done. The directory is watched rather than the file so that
// editors that replace files on save are still seen.
func Watch(ctx context.Context, path string, send func(tea.Msg)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}
	go watchLoop(ctx, fw, path, send)
	return nil
}

func watchLoop(ctx context.Context, fw *fsnotify.Watcher, path string, send func(tea.Msg)) {
	defer fw.Close()

	target := filepath.Clean(path)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	var pending time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}
		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			send(FileChangedMsg{Path: path})
		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}
