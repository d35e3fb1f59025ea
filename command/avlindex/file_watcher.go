// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlindex/fault"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Stop() error
}

const (
	FileWatcherLoggerPrefix = "file-watcher"
)

// WatcherChannel - events sent by the watcher, each buffered by one so
// that bursts of events collapse
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcherData - fsnotify based watcher
type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.NotFoundError("file: " + filePath + " does not exist")
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

// Start - begin watching in the background
//
// the directory is watched rather than the file, so editors that
// replace the file by renaming are seen as a change
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher, ends the background loop
func (w *FileWatcherData) Stop() error {
	return w.watcher.Close()
}

func (w *FileWatcherData) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.log.Info("watcher closed")
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				if _, err := os.Stat(w.filePath); nil == err {
					// replaced in place
					w.sendEvent(w.channel.change, "change")
					continue
				}
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
