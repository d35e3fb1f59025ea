// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/multiset"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments, os.Stdout) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if len(options["verbose"]) > 0 {
		fmt.Printf("data directory: %s\n", masterConfiguration.DataDirectory)
		fmt.Printf("log file:       %s/%s\n", masterConfiguration.Logging.Directory, masterConfiguration.Logging.File)
		fmt.Printf("menu:           %+v\n", masterConfiguration.Menu)
	}

	// ------------------
	// start of real main
	// ------------------

	initial, err := masterConfiguration.Menu.settings()
	if nil != err {
		log.Criticalf("menu settings error: %s", err)
		exitwithstatus.Message("%s: menu settings error: %s", program, err)
	}
	settings := newLiveSettings(initial)

	expiry := time.Duration(masterConfiguration.CacheSeconds) * time.Second
	store, err := multiset.New(logger.New("multiset"), expiry)
	if nil != err {
		log.Criticalf("multiset setup error: %s", err)
		exitwithstatus.Message("%s: multiset setup error: %s", program, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if "" != configurationFile {
		channel := newWatcherChannel()
		watcher, err := newFileWatcher(configurationFile, logger.New(FileWatcherLoggerPrefix), channel)
		if nil != err {
			exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
		}
		if err := watcher.Start(); nil != err {
			exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
		}
		defer watcher.Stop()

		go reloadSettings(ctx, configurationFile, settings, channel, logger.New(reloaderLoggerPrefix))
	}

	// echo input when it is not typed by a person
	echo := !terminal.IsTerminal(int(os.Stdin.Fd()))
	if len(options["quiet"]) > 0 {
		echo = false
	}

	menu := newMenu(logger.New("menu"), store, settings, os.Stdin, os.Stdout, echo)
	if err := menu.Run(); nil != err {
		log.Criticalf("menu error: %s", err)
		exitwithstatus.Message("%s: menu error: %s", program, err)
	}

	stats := store.Statistics()
	log.Infof("statistics: %+v", stats)
}
