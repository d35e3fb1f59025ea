// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		fmt.Printf("root: %v has parent: %v\n", tree.root.key, tree.root.up.key)
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - check that every stored balance matches the real
// sub-tree heights and is within -1..+1
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns height of p
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if rh-lh != p.balance {
		fmt.Printf("balance at node: %v   actual: %d  expected: %d\n", p.key, p.balance, rh-lh)
		return 0, false
	}
	if p.balance < -1 || p.balance > 1 {
		fmt.Printf("unbalanced node: %v   balance: %d\n", p.key, p.balance)
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// CheckOrder - check keys strictly increase in ascending order,
// every count is positive and the reverse walk meets the same nodes
func (tree *Tree) CheckOrder() bool {
	var previous *Node
	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		if 0 == p.count {
			fmt.Printf("zero count at node: %v\n", p.key)
			return false
		}
		if nil != previous && previous.key.Compare(p.key) >= 0 {
			fmt.Printf("order fail: %v  before: %v\n", previous.key, p.key)
			return false
		}
		previous = p
		n += 1
	}
	if previous != tree.Last() {
		fmt.Printf("last: %v  expected: %v\n", keyOf(tree.Last()), keyOf(previous))
		return false
	}
	for p := tree.Last(); nil != p; p = p.Prev() {
		n -= 1
	}
	if 0 != n {
		fmt.Printf("reverse walk differs by: %d nodes\n", n)
		return false
	}
	return true
}

// CheckCounts - check the node and occurrence totals against the
// nodes actually linked into the tree
func (tree *Tree) CheckCounts() bool {
	nodes := 0
	total := 0
	for p := tree.First(); nil != p; p = p.Next() {
		nodes += 1
		total += int(p.count)
	}
	if nodes != tree.nodes || total != tree.total {
		fmt.Printf("counts: nodes: %d/%d  total: %d/%d\n", nodes, tree.nodes, total, tree.total)
		return false
	}
	return true
}

// Height - number of levels in the tree, 0 when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
