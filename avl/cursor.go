// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avlindex/fault"
)

// Traversal - order in which a cursor visits the nodes
type Traversal int

// supported orders
const (
	Ascending  Traversal = iota // in-order, lowest key first
	LevelOrder Traversal = iota // breadth first, left to right
)

func (t Traversal) String() string {
	switch t {
	case Ascending:
		return "ascending"
	case LevelOrder:
		return "level"
	default:
		return "invalid"
	}
}

// ParseTraversal - convert a name to a traversal order
func ParseTraversal(s string) (Traversal, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc", "in-order", "inorder":
		return Ascending, nil
	case "level", "level-order", "levelorder", "breadth":
		return LevelOrder, nil
	default:
		return Ascending, fault.ErrInvalidTraversal
	}
}

// where an ascending cursor goes after the current node
type direction int

const (
	dirRight  direction = iota // descend to the lowest node of the right sub-tree
	dirParent direction = iota // climb until arriving from a left child
	dirEnd    direction = iota // finished
)

// Cursor - resumable iteration over a tree
//
// Advance must be called before the first Current.  Any Insert or
// Remove on the tree after the cursor was created invalidates it: the
// next Advance returns false and Err returns
// fault.ErrCursorInvalidated.
type Cursor struct {
	tree       *Tree
	order      Traversal
	generation uint64
	current    *Node
	started    bool
	err        error

	// Ascending
	next direction

	// LevelOrder
	queue []*Node
	head  int
}

// Iterate - create a cursor positioned before the first node of the
// requested order
func (tree *Tree) Iterate(order Traversal) (*Cursor, error) {
	c := &Cursor{
		tree:       tree,
		order:      order,
		generation: tree.generation,
	}
	switch order {
	case Ascending:
		c.next = dirRight
	case LevelOrder:
		if nil != tree.root {
			c.queue = append(make([]*Node, 0, 8), tree.root)
		}
	default:
		return nil, fault.ErrInvalidTraversal
	}
	return c, nil
}

// Order - the traversal order of this cursor
func (c *Cursor) Order() Traversal {
	return c.order
}

// Advance - move to the next node, false when there are no more nodes
// or the cursor was invalidated
func (c *Cursor) Advance() bool {
	if !c.valid() {
		return false
	}
	switch c.order {
	case Ascending:
		c.current = c.ascend()
	case LevelOrder:
		c.current = c.dequeue()
	}
	c.started = true
	return nil != c.current
}

// Current - key and count of the node under the cursor, ok is false
// before the first Advance, after the end or once invalidated
func (c *Cursor) Current() (key Item, count uint64, ok bool) {
	if !c.valid() || nil == c.current {
		return nil, 0, false
	}
	return c.current.key, c.current.count, true
}

// Err - the reason iteration stopped early, nil if it was not stopped
func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) valid() bool {
	if nil != c.err {
		return false
	}
	if c.generation != c.tree.generation {
		c.err = fault.ErrCursorInvalidated
		c.current = nil
		c.queue = nil
		return false
	}
	return true
}

func (c *Cursor) ascend() *Node {
	var n *Node
	switch {
	case !c.started:
		n = c.tree.root.first()

	case dirRight == c.next:
		n = c.current.right.first()

	case dirParent == c.next:
		child := c.current
		n = child.up
		for nil != n && n.right == child {
			child = n
			n = n.up
		}

	default:
		return nil
	}

	switch {
	case nil == n:
		c.next = dirEnd
	case nil != n.right:
		c.next = dirRight
	default:
		c.next = dirParent
	}
	return n
}

func (c *Cursor) dequeue() *Node {
	if c.head >= len(c.queue) {
		c.queue = c.queue[:0]
		c.head = 0
		return nil
	}
	n := c.queue[c.head]
	c.queue[c.head] = nil
	c.head += 1

	if nil != n.left {
		c.queue = append(c.queue, n.left)
	}
	if nil != n.right {
		c.queue = append(c.queue, n.right)
	}

	// compact once the consumed prefix dominates
	if c.head > 32 && 2*c.head > len(c.queue) {
		k := copy(c.queue, c.queue[c.head:])
		c.queue = c.queue[:k]
		c.head = 0
	}
	return n
}
