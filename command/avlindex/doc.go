// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlindex - interactive menu over an AVL ordered multiset
//
// usage:
//
//   avlindex [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]
//
// without a command the menu loop is started: values can be added,
// removed, searched for, fetched by index and displayed.  The optional
// Lua configuration file selects the traversal used for indexing, the
// display format and whether searches print their path; edits to it
// are picked up while the menu is running.
package main
