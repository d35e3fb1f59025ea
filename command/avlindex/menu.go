// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/multiset"
)

// menu options
const (
	optionAdd     = 1
	optionRemove  = 2
	optionSearch  = 3
	optionIndex   = 4
	optionDisplay = 5
	optionExit    = 6
)

// Menu - the interactive loop
type Menu struct {
	log      *logger.L
	store    multiset.Store
	settings *liveSettings
	tokens   *tokenReader
	out      io.Writer
	echo     bool // repeat each word read, for non-terminal input
}

func newMenu(log *logger.L, store multiset.Store, settings *liveSettings, in io.Reader, out io.Writer, echo bool) *Menu {
	return &Menu{
		log:      log,
		store:    store,
		settings: settings,
		tokens:   newTokenReader(in),
		out:      out,
		echo:     echo,
	}
}

// Run - loop until the exit option is chosen or input ends
func (m *Menu) Run() error {
	for {
		m.showMenu()

		option, err := m.input("Please enter an option: ", "Option must be an integer between 1 and 6", between(optionAdd, optionExit))
		if nil != err {
			return m.stopped(err)
		}
		m.log.Debugf("option: %d", option)

		switch option {
		case optionAdd:
			err = m.add()
		case optionRemove:
			err = m.remove()
		case optionSearch:
			err = m.search()
		case optionIndex:
			err = m.index()
		case optionDisplay:
			err = m.display()
		case optionExit:
			m.println("Enter any key(s) to exit: ")
			_, _ = m.tokens.next()
			m.log.Info("exit selected")
			return nil
		}
		if nil != err {
			return m.stopped(err)
		}
	}
}

// end of input is a normal way to finish
func (m *Menu) stopped(err error) error {
	if fault.ErrEndOfInput == err {
		m.log.Info("end of input")
		return nil
	}
	m.log.Errorf("menu stopped with error: %s", err)
	return err
}

func (m *Menu) showMenu() {
	m.println("-----------------------")
	m.println("1. Add a value")
	m.println("2. Remove a value")
	m.println("3. Search for a value")
	m.println("4. Get value at index")
	m.println("5. Display values")
	m.println("6. Exit")
	m.println("------------------------")
}

func (m *Menu) add() error {
	value, err := m.input("Please enter the value to add: ", "", nil)
	if nil != err {
		return err
	}
	m.store.Insert(value)
	m.log.Infof("added: %d", value)
	m.println("Successfully added the value")
	return nil
}

func (m *Menu) remove() error {
	value, err := m.input("Please enter the value to remove: ", "", nil)
	if nil != err {
		return err
	}
	if m.store.Remove(value) {
		m.log.Infof("removed: %d", value)
		m.println("Successfully removed the value")
	} else {
		m.log.Infof("remove: %d  error: %s", value, fault.ErrKeyNotFound)
		m.println("Failed to remove the value as it was not present in the tree")
	}
	return nil
}

func (m *Menu) search() error {
	value, err := m.input("Please enter the value to search for: ", "", nil)
	if nil != err {
		return err
	}

	found := false
	if m.settings.Get().Trace {
		var steps []avl.Step
		found, steps = m.store.Trace(value)
		for _, s := range steps {
			m.println(s.String())
		}
	} else {
		found = m.store.Contains(value)
	}

	if found {
		m.println("Value is present in the tree")
	} else {
		m.println("Value is not present in the tree")
	}
	return nil
}

func (m *Menu) index() error {
	if 0 == m.store.Size() {
		m.println("The tree is empty.")
		return nil
	}

	nodes := int64(m.store.NodeCount())
	index, err := m.input("Please enter the index of the node: ", "Index must be between 0 and "+strconv.FormatInt(nodes, 10), between(0, nodes-1))
	if nil != err {
		return err
	}

	order := m.settings.Get().Traversal
	value, err := m.store.At(int(index), order)
	if nil != err {
		if fault.IsErrRange(err) {
			// contents changed by another user of the store
			m.println("Index must be between 0 and " + strconv.Itoa(m.store.NodeCount()))
			return nil
		}
		return err
	}
	m.log.Debugf("index: %d  order: %s  value: %d", index, order, value)
	m.printf("The value at %d is %d\n", index, value)
	return nil
}

func (m *Menu) display() error {
	m.println("Tree: ")

	var order avl.Traversal
	switch m.settings.Get().Display {
	case DisplayTree:
		m.store.Print(m.out, false)
		return nil
	case DisplayLevel:
		order = avl.LevelOrder
	default:
		order = avl.Ascending
	}

	entries, err := m.store.Entries(order)
	if nil != err {
		return err
	}
	m.println(formatEntries(entries))
	return nil
}

// [1, 2×3, 5]
func formatEntries(entries []multiset.Entry) string {
	s := make([]string, len(entries))
	for i, e := range entries {
		if e.Count > 1 {
			s[i] = fmt.Sprintf("%d×%d", e.Key, e.Count)
		} else {
			s[i] = strconv.FormatInt(e.Key, 10)
		}
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, arguments ...interface{}) {
	fmt.Fprintf(m.out, format, arguments...)
}
