package stream

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a tracks file when it changes on disk and stages the new
// tracks for the Controller.
type Watcher struct {
	path     string
	commands *CommandQueue
	watcher  *fsnotify.Watcher
}

// NewWatcher starts watching path. The containing directory is watched so
// that editors which replace the file on save are still noticed.
func NewWatcher(path string, commands *CommandQueue) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", path)
	}

	w := new(Watcher)
	w.path = filepath.Clean(path)
	w.commands = commands
	w.watcher = fw
	return w, nil
}

// Run handles file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.Reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// Reload parses the tracks file and stages a ReplaceCommand. A file that fails
// to parse is logged and the running tracks are kept.
func (w *Watcher) Reload() bool {
	defs, err := LoadTracks(w.path)
	if err != nil {
		log.Printf("Reload of %s failed: %v", w.path, err)
		return false
	}
	w.commands.Push(ReplaceCommand{Tracks: defs})
	log.Printf("Reloaded %s", w.path)
	return true
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
