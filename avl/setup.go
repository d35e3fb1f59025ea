// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root       *Node
	nodes      int    // distinct keys
	total      int    // sum of all node counts
	generation uint64 // bumped by every mutation, checked by cursors
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		nodes: 0,
		total: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size - total number of occurrences of all keys
func (tree *Tree) Size() int {
	return tree.total
}

// NodeCount - number of distinct keys currently in the tree
func (tree *Tree) NodeCount() int {
	return tree.nodes
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Count - number of times the key was inserted and not yet removed
func (p *Node) Count() uint64 {
	return p.count
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
