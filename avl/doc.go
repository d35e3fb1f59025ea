// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered multiset with the addition of
// parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access (see the multiset package).
//
// Each distinct key occupies exactly one node which carries an
// occurrence count.  Inserting a key that is already present only
// increments its count and removing it only decrements the count
// until the last occurrence is gone, at which point the node is
// unlinked and the tree rebalanced.
//
// Balance is stored per node as height(right) - height(left) and is
// maintained incrementally.  Both post-insert and post-delete
// propagation walk up the parent links iteratively, so stack use does
// not depend on the height of the tree.
//
// Two traversal orders are provided as resumable cursors: Ascending
// (in-order) and LevelOrder (breadth first).  A cursor is bound to the
// state of the tree when it was created; any later Insert or Remove
// invalidates it.
package avl
