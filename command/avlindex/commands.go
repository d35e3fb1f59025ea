// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avlindex/fault"
)

const configurationTemplate = `-- avlindex.conf  -*- mode: lua -*-

local M = {}

-- relative paths below are taken from here
-- "." means the directory of this file
M.data_directory = "."

-- seconds to remember "Get value at index" results, 0 to disable
M.cache_seconds = 300

-- these three can be edited while the menu is running
M.menu = {
    -- order used for "Get value at index": ascending or level
    traversal = "ascending",

    -- format of "Display values": ascending, level or tree
    display = "ascending",

    -- print the root/left/right path taken by "Search for a value"
    trace = false,
}

M.logging = {
    directory = "log",
    file = "avlindex.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
        -- menu = "debug",
        -- multiset = "debug",
    },
}

return M
`

// setup command handler
//
// commands that do not need the configuration file; returns false if
// the menu should be run
func processSetupCommand(program string, arguments []string, out io.Writer) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "config-template", "template", "t":
		if 0 == len(arguments) {
			fmt.Fprint(out, configurationTemplate)
			break
		}
		fileName := arguments[0]
		if err := writeTemplate(fileName); nil != err {
			fmt.Fprintf(out, "write template: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Fprintf(out, "generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(out, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(out, "error: missing command\n")
		default:
			fmt.Fprintf(out, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(out, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Fprintf(out, "supported commands:\n\n")
		fmt.Fprintf(out, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(out, "  version                    (v)      - display version string\n\n")

		fmt.Fprintf(out, "  config-template [FILE]     (t)      - print a sample configuration\n")
		fmt.Fprintf(out, "                                        or write it to FILE if it does not exist\n")
		fmt.Fprintf(out, "\n")

		fmt.Fprintf(out, "  start                      (run)    - just run the menu, same as no arguments\n")
		fmt.Fprintf(out, "\n")

		exitwithstatus.Exit(1)
	}
	return true
}

func writeTemplate(fileName string) error {
	if _, err := os.Stat(fileName); nil == err {
		return fault.ErrFileAlreadyExists
	}
	if err := ioutil.WriteFile(fileName, []byte(configurationTemplate), 0600); nil != err {
		os.Remove(fileName)
		return err
	}
	return nil
}
