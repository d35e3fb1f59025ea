// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"io"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// Entry - a distinct key and its number of occurrences
type Entry struct {
	Key   int64
	Count uint64
}

// Store - operations of a multiset, to allow the menu to be tested
// against a mock
type Store interface {
	Insert(key int64) bool
	Remove(key int64) bool
	Contains(key int64) bool
	Trace(key int64) (bool, []avl.Step)
	At(index int, order avl.Traversal) (int64, error)
	Size() int
	NodeCount() int
	Walk(order avl.Traversal, visit func(Entry) bool) error
	Entries(order avl.Traversal) ([]Entry, error)
	Print(w io.Writer, printData bool) int
	Statistics() Statistics
}

// Set - a lock protected integer multiset
type Set struct {
	sync.Mutex
	log       *logger.L
	tree      *avl.Tree
	positions positionCache
	stats     Statistics
}

// check that Set satisfies Store
var _ Store = (*Set)(nil)

// New - create an empty set
//
// expiry is the lifetime of memoised positional lookups, zero
// disables the memo
func New(log *logger.L, expiry time.Duration) (*Set, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if expiry < 0 {
		return nil, fault.ErrInvalidCacheExpiry
	}

	log.Infof("new set, position cache expiry: %s", expiry)

	return &Set{
		log:       log,
		tree:      avl.New(),
		positions: newPositionCache(expiry),
	}, nil
}
