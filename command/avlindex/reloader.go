// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlindex/configuration"
)

const (
	reloaderLoggerPrefix = "reloader"
	reloadInterval       = 500 * time.Millisecond
)

// apply menu settings from the configuration file each time the
// watcher reports a change, at most once per reloadInterval
func reloadSettings(ctx context.Context, fileName string, settings *liveSettings, channel WatcherChannel, log *logger.L) {
	limiter := rate.NewLimiter(rate.Every(reloadInterval), 1)

	for {
		select {
		case <-ctx.Done():
			return

		case <-channel.remove:
			log.Warn("configuration file removed, keeping current settings")

		case <-channel.change:
			if err := limiter.Wait(ctx); nil != err {
				return
			}
			s, err := readSettings(fileName)
			if nil != err {
				log.Errorf("reload: %q  error: %s", fileName, err)
				continue
			}
			settings.Set(s)
			log.Infof("reloaded: traversal: %s  display: %s  trace: %t", s.Traversal, s.Display, s.Trace)
		}
	}
}

// only the menu part of the file is used after start up
func readSettings(fileName string) (Settings, error) {
	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
		return Settings{}, err
	}
	return options.Menu.settings()
}
