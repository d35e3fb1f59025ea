// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// make the link from parent that pointed to old point at new instead
// (or the tree root when parent is nil) and fix new's up pointer
func (tree *Tree) replaceChild(parent *Node, old *Node, new *Node) {
	switch {
	case nil == parent:
		tree.root = new
	case parent.left == old:
		parent.left = new
	case parent.right == old:
		parent.right = new
	default:
		fault.Panicf("avl: node: %v is not a child of: %v", old.key, parent.key)
	}
	if nil != new {
		new.up = parent
	}
}

// put new into the position occupied by old, taking over its parent,
// both children and its balance
func (tree *Tree) splice(old *Node, new *Node) {
	tree.replaceChild(old.up, old, new)

	new.left = old.left
	if nil != new.left {
		new.left.up = new
	}
	new.right = old.right
	if nil != new.right {
		new.right.up = new
	}
	new.balance = old.balance
}

// clear all links of a node that is no longer part of the tree
func detach(node *Node) {
	node.up = nil
	node.left = nil
	node.right = nil
}
