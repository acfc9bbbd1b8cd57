package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// newWatcher watches dir and every directory below it.
func newWatcher(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		plog.Tracef("watching %s", path)
		return w.Add(path)
	})
	if err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// relevant reports whether ev can change the result of a check.
func relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	return filepath.Ext(ev.Name) == sourceExt
}

// watchLoop calls onChange once the events stop arriving for the debounce
// period. New directories are handed to addDir. It returns when ctx is done
// or a channel is closed.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, debounce time.Duration, addDir func(string) error, onChange func()) error {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && addDir != nil {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addDir(ev.Name); err != nil {
						plog.Warningf("cannot watch %s: %v", ev.Name, err)
					}
				}
			}
			if !relevant(ev) {
				continue
			}
			plog.Debugf("%s", ev)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			pending = false
			onChange()
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// watchDir checks dir once and then again after every burst of changes,
// until interrupted.
func watchDir(ctx context.Context, dir string, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := newWatcher(dir)
	if err != nil {
		return err
	}
	defer w.Close()

	run := func() {
		if _, err := checkDir(ctx, dir); err != nil {
			plog.Errorf("check %s: %v", dir, err)
		}
	}
	run()
	plog.Noticef("watching %s", dir)
	return watchLoop(ctx, w.Events, w.Errors, debounce, w.Add, run)
}
