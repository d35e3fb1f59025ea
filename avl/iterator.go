// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// which way an in-order walk moves
type heading bool

const (
	forward  heading = true
	backward heading = false
)

// the child on the far side for a walk in direction d
func (p *Node) child(d heading) *Node {
	if forward == d {
		return p.right
	}
	return p.left
}

// the child on the near side for a walk in direction d
func (p *Node) trailing(d heading) *Node {
	return p.child(!d)
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

func (p *Node) first() *Node {
	return p.extreme(backward)
}

func (p *Node) last() *Node {
	return p.extreme(forward)
}

// internal: outermost node of a sub-tree, nil for an empty one
func (p *Node) extreme(d heading) *Node {
	if nil == p {
		return nil
	}
	for c := p.child(d); nil != c; c = p.child(d) {
		p = c
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	return p.step(forward)
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	return p.step(backward)
}

// in-order neighbour: the near end of the far sub-tree, or else the
// first ancestor reached from its near side
func (p *Node) step(d heading) *Node {
	if c := p.child(d); nil != c {
		return c.extreme(!d)
	}
	for {
		child := p
		p = p.up
		if nil == p {
			return nil
		}
		if p.trailing(d) == child {
			return p
		}
	}
}
