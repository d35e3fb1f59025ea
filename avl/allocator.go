// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlindex/fault"
)

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node  // left sub-tree
	right   *Node  // right sub-tree
	up      *Node  // points to parent node, not owned
	key     Item   // key part for ordering
	count   uint64 // occurrences of key, ≥ 1 while in a tree
	balance int    // -1, 0, +1
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			fault.Panic("avl: node pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:     key,
			count:   1,
			balance: 0,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.count = 1
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.count = 0
	node.balance = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// Allocated - number of nodes ever created and the number currently
// waiting in the reclaim pool
func Allocated() (total int, free int) {
	m.Lock()
	total = totalNodes
	free = freeNodes
	m.Unlock()
	return
}
