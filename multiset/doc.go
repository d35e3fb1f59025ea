// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multiset - an integer multiset built on the avl tree that
// can be shared between go routines
//
// every public operation holds a single exclusive lock for its whole
// duration, iteration included, so no cursor escapes the lock.
// Positional lookups are memoised and the memo is flushed whenever
// the contents change.
package multiset
