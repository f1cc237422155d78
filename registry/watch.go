package registry

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFile loads the YAML item table from path and reloads it whenever
// the file changes. A failed reload keeps the last good table. The
// returned function stops the watcher.
func (r *ItemRegistry) WatchFile(path string) (func() error, error) {
	if err := r.loadFile(path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save
	// and a direct file watch dies with the old inode.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	target := filepath.Base(path)

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := r.loadFile(path); err != nil {
					log.Printf("[registry] reload failed, keeping previous table: %v", err)
					continue
				}
				log.Printf("[registry] reloaded %d items from %s", r.Len(), path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[registry] watch error: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}

func (r *ItemRegistry) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read item file: %w", err)
	}
	return r.LoadYAML(data)
}
