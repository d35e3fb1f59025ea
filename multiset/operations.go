// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"io"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// Insert - add one occurrence of key, true if it was not present
func (s *Set) Insert(key int64) bool {
	s.Lock()
	defer s.Unlock()

	s.positions.Clear()
	s.stats.Inserts += 1

	created := s.tree.Insert(avl.Int(key))
	s.log.Debugf("insert: %d  new node: %t  size: %d", key, created, s.tree.Size())
	return created
}

// Remove - remove one occurrence of key, false if it was absent
func (s *Set) Remove(key int64) bool {
	s.Lock()
	defer s.Unlock()

	if !s.tree.Remove(avl.Int(key)) {
		s.stats.Misses += 1
		s.log.Debugf("remove: %d  not present", key)
		return false
	}
	s.positions.Clear()
	s.stats.Removes += 1
	s.log.Debugf("remove: %d  size: %d", key, s.tree.Size())
	return true
}

// Contains - true if key occurs at least once
func (s *Set) Contains(key int64) bool {
	s.Lock()
	defer s.Unlock()

	s.stats.Lookups += 1
	return s.tree.Contains(avl.Int(key))
}

// Trace - like Contains but also return the descent taken
func (s *Set) Trace(key int64) (bool, []avl.Step) {
	s.Lock()
	defer s.Unlock()

	s.stats.Lookups += 1
	steps := make([]avl.Step, 0, 2*s.tree.Height())
	found := s.tree.Trace(avl.Int(key), func(step avl.Step) {
		steps = append(steps, step)
	})
	s.log.Tracef("trace: %d  found: %t  steps: %v", key, found, steps)
	return found, steps
}

// At - key at a 0-based position of a traversal order
func (s *Set) At(index int, order avl.Traversal) (int64, error) {
	s.Lock()
	defer s.Unlock()

	s.stats.Lookups += 1
	if key, ok := s.positions.Get(order, index); ok {
		s.stats.CacheHits += 1
		return key, nil
	}

	item, err := s.tree.At(index, order)
	if nil != err {
		s.log.Debugf("at: %d  order: %s  error: %s", index, order, err)
		return 0, err
	}
	key := int64(item.(avl.Int))
	s.positions.Set(order, index, key)
	return key, nil
}

// Size - total occurrences
func (s *Set) Size() int {
	s.Lock()
	defer s.Unlock()
	return s.tree.Size()
}

// NodeCount - distinct keys
func (s *Set) NodeCount() int {
	s.Lock()
	defer s.Unlock()
	return s.tree.NodeCount()
}

// Walk - call visit for each distinct key in order until it returns
// false
//
// the set is locked for the whole walk so visit must not call back
// into the set
func (s *Set) Walk(order avl.Traversal, visit func(Entry) bool) error {
	s.Lock()
	defer s.Unlock()
	return s.walk(order, visit)
}

func (s *Set) walk(order avl.Traversal, visit func(Entry) bool) error {
	c, err := s.tree.Iterate(order)
	if nil != err {
		return err
	}
	for c.Advance() {
		key, count, ok := c.Current()
		if !ok {
			fault.Critical("multiset: cursor advanced without a current node")
			return fault.ErrCursorInvalidated
		}
		if !visit(Entry{Key: int64(key.(avl.Int)), Count: count}) {
			break
		}
	}
	return c.Err()
}

// Entries - all distinct keys with counts in a traversal order
func (s *Set) Entries(order avl.Traversal) ([]Entry, error) {
	s.Lock()
	defer s.Unlock()

	entries := make([]Entry, 0, s.tree.NodeCount())
	err := s.walk(order, func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	if nil != err {
		return nil, err
	}
	return entries, nil
}

// Print - ASCII drawing of the tree, returns its depth
func (s *Set) Print(w io.Writer, printData bool) int {
	s.Lock()
	defer s.Unlock()
	return s.tree.Fprint(w, printData)
}
