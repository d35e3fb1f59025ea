// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - remove one occurrence of a key
//
// returns false if the key was not present; the node itself is only
// unlinked when its last occurrence is removed
func (tree *Tree) Remove(key Item) bool {
	node := tree.find(key, nil)
	if nil == node {
		return false
	}

	tree.generation += 1
	tree.total -= 1

	if node.count > 1 {
		node.count -= 1
		return true
	}

	tree.unlink(node)
	tree.nodes -= 1
	freeNode(node)
	return true
}

// take a node out of the tree and rebalance
func (tree *Tree) unlink(node *Node) {

	// zero or one child: lift the child into the node's place
	if nil == node.left || nil == node.right {
		child := node.left
		if nil == child {
			child = node.right
		}
		parent := node.up
		fromLeft := nil != parent && parent.left == node
		tree.replaceChild(parent, node, child)
		detach(node)
		tree.deleteFixup(parent, fromLeft)
		return
	}

	successor := node.right.first()

	if successor == node.right {
		// successor is the direct right child: it keeps its own
		// right sub-tree and adopts the left one, so its right side
		// is now one level shorter than node's right side was
		tree.replaceChild(node.up, node, successor)
		successor.left = node.left
		successor.left.up = successor
		successor.balance = node.balance
		detach(node)
		tree.deleteFixup(successor, false)
		return
	}

	// successor lies deeper: its right sub-tree replaces it under its
	// parent, then it takes over node's position
	parent := successor.up
	tree.replaceChild(parent, successor, successor.right)
	tree.splice(node, successor)
	detach(node)
	tree.deleteFixup(parent, true)
}
