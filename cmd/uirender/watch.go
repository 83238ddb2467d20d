package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls onChange for every write to one of the files, until ctx is
// done. Errors of the watcher are passed to onError. The directories of the
// files are watched, as editors tend to replace files instead of writing them.
func watch(ctx context.Context, files []string, onChange func(name string), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		wanted[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !wanted[name] {
				continue
			}
			tracer().Debugf("%s changed", name)
			onChange(name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
