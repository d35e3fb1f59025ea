// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Step - one decision taken while descending the tree
type Step int

// descent decisions
const (
	StepRoot  Step = iota
	StepLeft  Step = iota
	StepRight Step = iota
)

func (s Step) String() string {
	switch s {
	case StepRoot:
		return "root"
	case StepLeft:
		return "left"
	case StepRight:
		return "right"
	default:
		return "?"
	}
}

// Contains - true if at least one occurrence of key is present
func (tree *Tree) Contains(key Item) bool {
	return nil != tree.find(key, nil)
}

// Search - find the node holding a specific key, nil if absent
func (tree *Tree) Search(key Item) *Node {
	return tree.find(key, nil)
}

// Trace - same as Contains, but report each step of the descent
// ("root" first, then one "left" or "right" per level) to the step
// function
func (tree *Tree) Trace(key Item, step func(Step)) bool {
	return nil != tree.find(key, step)
}

func (tree *Tree) find(key Item, step func(Step)) *Node {
	p := tree.root
	if nil != p && nil != step {
		step(StepRoot)
	}
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
			if nil != p && nil != step {
				step(StepLeft)
			}
		case -1: // p.key < key
			p = p.right
			if nil != p && nil != step {
				step(StepRight)
			}
		default:
			return p
		}
	}
	return nil
}
