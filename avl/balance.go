// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// single left rotation around x, returns the new top of the sub-tree
//
//      x                y
//     / \              / \
//    a   y     =>     x   c
//       / \          / \
//      b   c        a   b
//
func (tree *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	if nil == y {
		fault.Panicf("avl: rotate left at: %v has no right child", x.key)
	}

	tree.replaceChild(x.up, x, y)

	x.right = y.left
	if nil != x.right {
		x.right.up = x
	}
	y.left = x
	x.up = y

	x.balance = x.balance - 1 - max(y.balance, 0)
	y.balance = y.balance - 1 + min(x.balance, 0)
	return y
}

// single right rotation around x, returns the new top of the sub-tree
//
//        x            y
//       / \          / \
//      y   c   =>   a   x
//     / \              / \
//    a   b            b   c
//
func (tree *Tree) rotateRight(x *Node) *Node {
	y := x.left
	if nil == y {
		fault.Panicf("avl: rotate right at: %v has no left child", x.key)
	}

	tree.replaceChild(x.up, x, y)

	x.left = y.right
	if nil != x.left {
		x.left.up = x
	}
	y.right = x
	x.up = y

	x.balance = x.balance + 1 - min(y.balance, 0)
	y.balance = y.balance + 1 + max(x.balance, 0)
	return y
}

// restore a node whose balance reached ±2, returns the new top of the
// sub-tree
//
//   -2 and left  ≤ 0  → right
//   -2 and left  > 0  → left-right
//   +2 and right ≥ 0  → left
//   +2 and right < 0  → right-left
func (tree *Tree) rebalance(p *Node) *Node {
	switch p.balance {
	case -2:
		if nil == p.left {
			fault.Panicf("avl: left heavy node: %v has no left child", p.key)
		}
		if p.left.balance > 0 {
			tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)

	case +2:
		if nil == p.right {
			fault.Panicf("avl: right heavy node: %v has no right child", p.key)
		}
		if p.right.balance < 0 {
			tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)

	default:
		fault.Panicf("avl: rebalance called on node: %v with balance: %d", p.key, p.balance)
	}
	return p
}

// walk up from the parent of a newly attached node; child is the
// sub-tree that just grew by one level
func (tree *Tree) insertFixup(p *Node, child *Node) {
	for nil != p {
		if p.left == child {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			return // height of p unchanged
		case -1, +1:
			child = p
			p = p.up
		default:
			tree.rebalance(p)
			return // one rotation always suffices after an insert
		}
	}
}

// walk up from p whose left (fromLeft) or right sub-tree just became
// one level shorter
func (tree *Tree) deleteFixup(p *Node, fromLeft bool) {
	for nil != p {
		if fromLeft {
			p.balance += 1
		} else {
			p.balance -= 1
		}

		switch p.balance {
		case -1, +1:
			return // was 0, height of p unchanged
		case 0:
			// p got shorter
		default:
			p = tree.rebalance(p)
			if 0 != p.balance {
				return
			}
		}

		parent := p.up
		if nil == parent {
			return
		}
		fromLeft = parent.left == p
		p = parent
	}
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
