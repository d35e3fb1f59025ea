// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"sync"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// Display - how option 5 shows the values
type Display int

const (
	DisplayAscending Display = iota // [k, k×n, …] lowest first
	DisplayLevel     Display = iota // [k, k×n, …] breadth first
	DisplayTree      Display = iota // ASCII drawing
)

func (d Display) String() string {
	switch d {
	case DisplayAscending:
		return "ascending"
	case DisplayLevel:
		return "level"
	case DisplayTree:
		return "tree"
	default:
		return "invalid"
	}
}

func parseDisplay(s string) (Display, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc":
		return DisplayAscending, nil
	case "level", "level-order":
		return DisplayLevel, nil
	case "tree", "graph":
		return DisplayTree, nil
	default:
		return DisplayAscending, fault.ErrInvalidDisplayMode
	}
}

// Settings - menu behaviour that can be reloaded
type Settings struct {
	Traversal avl.Traversal
	Display   Display
	Trace     bool
}

// shared between the menu and the reloader
type liveSettings struct {
	sync.RWMutex
	current Settings
}

func newLiveSettings(s Settings) *liveSettings {
	return &liveSettings{
		current: s,
	}
}

func (l *liveSettings) Get() Settings {
	l.RLock()
	defer l.RUnlock()
	return l.current
}

func (l *liveSettings) Set(s Settings) {
	l.Lock()
	l.current = s
	l.Unlock()
}
