// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Get - key at a 0-based position in ascending order
func (tree *Tree) Get(index int) (Item, error) {
	return tree.At(index, Ascending)
}

// At - key at a 0-based position in the given traversal order
//
// duplicates occupy a single position, so valid indexes run from 0
// to NodeCount()-1
func (tree *Tree) At(index int, order Traversal) (Item, error) {
	c, err := tree.Iterate(order)
	if nil != err {
		return nil, err
	}
	if index < 0 || index >= tree.nodes {
		return nil, fault.ErrIndexOutOfRange
	}

	for i := 0; i <= index; i += 1 {
		if !c.Advance() {
			fault.Panicf("avl: cursor ended at: %d of: %d nodes", i, tree.nodes)
		}
	}
	key, _, _ := c.Current()
	return key, nil
}
