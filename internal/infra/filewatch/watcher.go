// Package filewatch reports changes to a single file.
package filewatch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/runoshun/todo/internal/domain"
)

// Watcher signals on Changes whenever the watched file is written, created,
// renamed or removed.
// The parent directory is watched so that files replaced by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  domain.Logger
	changes chan struct{}
	done    chan struct{}
	file    string
	wg      sync.WaitGroup
}

// New starts watching path.
func New(path string, logger domain.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		logger:  logger,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		file:    abs,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes returns a channel that receives a value after each change.
// Bursts of events are coalesced into one pending signal.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watch", err.Error())
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.file {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
