package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/chrisuehlinger/avita/network"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 100 * time.Millisecond

// watch runs build once, then again whenever one of the files changes,
// until ctx is done. Build failures are logged and do not stop the loop.
func watch(ctx context.Context, script, template string, build func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	files := map[string]bool{}
	for _, path := range []string{script, template} {
		if path == "" || network.IsURL(path) {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrap(err, "resolve path")
		}
		files[abs] = true
		// Watch the directory so editors that replace the file are seen.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
	}

	rebuild := func() {
		if err := build(); err != nil {
			logrus.WithError(err).Error("render failed")
			return
		}
		logrus.WithField("script", script).Info("rendered")
	}
	rebuild()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if !files[abs] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logrus.WithField("file", ev.Name).Debug(ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("watcher error")
		}
	}
}
