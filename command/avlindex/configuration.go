// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/configuration"
	"github.com/bitmark-inc/avlindex/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlindex.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultCacheSeconds = 300
	defaultTraversal    = "ascending"
	defaultDisplay      = "ascending"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// MenuConfiguration - settings that can change while running
type MenuConfiguration struct {
	Traversal string `gluamapper:"traversal" json:"traversal"`
	Display   string `gluamapper:"display" json:"display"`
	Trace     bool   `gluamapper:"trace" json:"trace"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	CacheSeconds  int                  `gluamapper:"cache_seconds" json:"cache_seconds"`
	Menu          MenuConfiguration    `gluamapper:"menu" json:"menu"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		CacheSeconds:  defaultCacheSeconds,
		Menu: MenuConfiguration{
			Traversal: defaultTraversal,
			Display:   defaultDisplay,
			Trace:     false,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	}
	options.DataDirectory = configuration.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.InvalidError("log file: " + options.Logging.File + " is not a plain name")
	}

	if err := configuration.EnsureDirectory(options.DataDirectory, &options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check values that are not paths
func (c *Configuration) validate() error {
	if c.CacheSeconds < 0 {
		return fault.ErrInvalidCacheExpiry
	}
	if c.Logging.Count <= 0 || c.Logging.Size <= 0 {
		return fault.ErrInvalidCount
	}
	_, err := c.Menu.settings()
	return err
}

// convert the text form to the values the menu uses
func (m MenuConfiguration) settings() (Settings, error) {
	traversal, err := avl.ParseTraversal(m.Traversal)
	if nil != err {
		return Settings{}, err
	}
	display, err := parseDisplay(m.Display)
	if nil != err {
		return Settings{}, err
	}
	return Settings{
		Traversal: traversal,
		Display:   display,
		Trace:     m.Trace,
	}, nil
}
