// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add one occurrence of a key
//
// returns true if a new node was created, false if the key was
// already present and only its count was incremented
func (tree *Tree) Insert(key Item) bool {
	tree.generation += 1
	tree.total += 1

	var parent *Node
	goLeft := false
	for p := tree.root; nil != p; {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			parent = p
			goLeft = true
			p = p.left
		case -1: // p.key < key
			parent = p
			goLeft = false
			p = p.right
		default:
			p.count += 1
			return false
		}
	}

	node := newNode(key)
	tree.nodes += 1

	if nil == parent {
		tree.root = node
		return true
	}

	node.up = parent
	if goLeft {
		parent.left = node
	} else {
		parent.right = node
	}
	tree.insertFixup(parent, node)
	return true
}
