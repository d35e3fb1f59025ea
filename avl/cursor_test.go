// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

func levelOrder(t *testing.T, tree *avl.Tree) []int64 {
	c, err := tree.Iterate(avl.LevelOrder)
	assert.Nil(t, err, "iterate")
	keys := []int64{}
	for c.Advance() {
		key, _, ok := c.Current()
		assert.True(t, ok, "current")
		keys = append(keys, int64(key.(avl.Int)))
	}
	assert.Nil(t, c.Err(), "cursor error")
	return keys
}

func TestLevelOrder(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, []int64{4, 2, 6, 1, 3, 5, 7}, levelOrder(t, tree), "level order")

	tree = build(14, 33, 50, 72, 99, 76, 78, 82, 39, 45)
	keys := levelOrder(t, tree)
	assert.Equal(t, 10, len(keys), "visited")
	assert.Equal(t, int64(tree.Root().Key().(avl.Int)), keys[0], "root first")
}

// no node is ever yielded before its parent
func TestLevelOrderParentFirst(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.New()
	for i := 0; i < 1000; i += 1 {
		tree.Insert(avl.Int(r.Int63n(700)))
	}

	seen := make(map[int64]struct{})
	for _, k := range levelOrder(t, tree) {
		node := tree.Search(avl.Int(k))
		if nil != node.Parent() {
			parent := int64(node.Parent().Key().(avl.Int))
			if _, ok := seen[parent]; !ok {
				t.Fatalf("node: %d yielded before parent: %d", k, parent)
			}
		}
		seen[k] = struct{}{}
	}
	assert.Equal(t, tree.NodeCount(), len(seen), "visited")
}

func TestAscendingNonDecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := avl.New()
	for i := 0; i < 1000; i += 1 {
		tree.Insert(avl.Int(r.Int63n(300)))
	}
	keys := ascending(t, tree)
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			t.Fatalf("[%d]: %d not before %d", i, keys[i-1], keys[i])
		}
	}
	assert.Equal(t, tree.NodeCount(), len(keys), "visited")
}

func TestCursorBeforeAndAfter(t *testing.T) {
	tree := build(2, 1, 3)

	for _, order := range []avl.Traversal{avl.Ascending, avl.LevelOrder} {
		c, err := tree.Iterate(order)
		assert.Nil(t, err, "%s: iterate", order)
		assert.Equal(t, order, c.Order(), "order")

		_, _, ok := c.Current()
		assert.False(t, ok, "%s: current before advance", order)

		n := 0
		for c.Advance() {
			n += 1
		}
		assert.Equal(t, 3, n, "%s: visited", order)

		_, _, ok = c.Current()
		assert.False(t, ok, "%s: current after end", order)
		assert.False(t, c.Advance(), "%s: advance after end", order)
		assert.Nil(t, c.Err(), "%s: error after end", order)
	}
}

func TestCursorCounts(t *testing.T) {
	tree := build(5, 5, 5, 1)

	c, err := tree.Iterate(avl.Ascending)
	assert.Nil(t, err, "iterate")
	assert.True(t, c.Advance(), "first")
	key, count, ok := c.Current()
	assert.True(t, ok, "current")
	assert.Equal(t, avl.Int(1), key, "first key")
	assert.Equal(t, uint64(1), count, "first count")

	assert.True(t, c.Advance(), "second")
	key, count, _ = c.Current()
	assert.Equal(t, avl.Int(5), key, "second key")
	assert.Equal(t, uint64(3), count, "second count")
}

func TestCursorInvalidation(t *testing.T) {
	tree := build(1, 2, 3)

	c, err := tree.Iterate(avl.Ascending)
	assert.Nil(t, err, "iterate")
	assert.True(t, c.Advance(), "advance")

	tree.Insert(avl.Int(4))

	_, _, ok := c.Current()
	assert.False(t, ok, "current after insert")
	assert.False(t, c.Advance(), "advance after insert")
	assert.Equal(t, fault.ErrCursorInvalidated, c.Err(), "error")
	assert.True(t, fault.IsErrProcess(c.Err()), "error class")

	c, _ = tree.Iterate(avl.LevelOrder)
	tree.Remove(avl.Int(4))
	assert.False(t, c.Advance(), "advance after remove")
	assert.Equal(t, fault.ErrCursorInvalidated, c.Err(), "error")

	// a failed remove does not modify the tree
	c, _ = tree.Iterate(avl.Ascending)
	assert.False(t, tree.Remove(avl.Int(99)), "remove absent")
	assert.True(t, c.Advance(), "advance after failed remove")
	assert.Nil(t, c.Err(), "no error")
}

func TestInvalidTraversal(t *testing.T) {
	tree := build(1, 2, 3)

	c, err := tree.Iterate(avl.Traversal(7))
	assert.Nil(t, c, "cursor")
	assert.Equal(t, fault.ErrInvalidTraversal, err, "iterate error")

	_, err = tree.At(0, avl.Traversal(-1))
	assert.Equal(t, fault.ErrInvalidTraversal, err, "at error")

	_, err = avl.ParseTraversal("sideways")
	assert.Equal(t, fault.ErrInvalidTraversal, err, "parse error")

	order, err := avl.ParseTraversal("Level")
	assert.Nil(t, err, "parse level")
	assert.Equal(t, avl.LevelOrder, order, "parsed level")
}

func TestAt(t *testing.T) {
	tree := build(4, 2, 6, 1, 3, 5, 7, 7, 7)

	for i, expected := range []int64{1, 2, 3, 4, 5, 6, 7} {
		item, err := tree.At(i, avl.Ascending)
		assert.Nil(t, err, "ascending: %d", i)
		assert.Equal(t, avl.Int(expected), item, "ascending: %d", i)
	}
	for i, expected := range []int64{4, 2, 6, 1, 3, 5, 7} {
		item, err := tree.At(i, avl.LevelOrder)
		assert.Nil(t, err, "level: %d", i)
		assert.Equal(t, avl.Int(expected), item, "level: %d", i)
	}

	// duplicates collapse, so 7 distinct positions
	_, err := tree.At(7, avl.Ascending)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "past end")
	assert.True(t, fault.IsErrRange(err), "error class")

	_, err = tree.Get(-1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative")

	_, err = avl.New().Get(0)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "empty")
}

func TestNextPrevAfterDelete(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	tree.Remove(avl.Int(4))

	n := tree.Search(avl.Int(3)).Next()
	assert.Equal(t, avl.Int(5), n.Key(), "next of 3")
	p := tree.Search(avl.Int(5)).Prev()
	assert.Equal(t, avl.Int(3), p.Key(), "prev of 5")
	assert.Nil(t, tree.Last().Next(), "next of last")
	assert.Nil(t, tree.First().Prev(), "prev of first")
}
