// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlindex/avl"
)

func ints(values ...int64) []avl.Int {
	keys := make([]avl.Int, len(values))
	for i, v := range values {
		keys[i] = avl.Int(v)
	}
	return keys
}

func build(values ...int64) *avl.Tree {
	tree := avl.New()
	for _, k := range ints(values...) {
		tree.Insert(k)
	}
	return tree
}

func ascending(t *testing.T, tree *avl.Tree) []int64 {
	c, err := tree.Iterate(avl.Ascending)
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

// key, count and balance of every node in level order
type shape struct {
	key     int64
	count   uint64
	balance int
}

func snapshot(tree *avl.Tree) []shape {
	s := []shape{}
	for depth := uint(0); nil != tree.Root(); depth += 1 {
		level := tree.Root().GetChildrenByDepth(depth)
		if 0 == len(level) {
			break
		}
		for _, n := range level {
			s = append(s, shape{int64(n.Key().(avl.Int)), n.Count(), n.Balance()})
		}
	}
	return s
}

func maxHeight(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.328
}

func TestScenarioTenKeys(t *testing.T) {
	tree := build(14, 33, 50, 72, 99, 76, 78, 82, 39, 45)

	assert.Equal(t, []int64{14, 33, 39, 45, 50, 72, 76, 78, 82, 99}, ascending(t, tree), "ascending order")
	assert.Equal(t, 10, tree.NodeCount(), "node count")
	assert.Equal(t, 10, tree.Size(), "size")
	assert.True(t, tree.Height() <= 4, "height: %d", tree.Height())
	assert.True(t, tree.CheckBalance(), "balance")
	assert.True(t, tree.CheckUp(), "parent links")
}

func TestScenarioDuplicates(t *testing.T) {
	tree := build(2, 2, 3)

	assert.Equal(t, 3, tree.Size(), "size")
	assert.Equal(t, 2, tree.NodeCount(), "node count")

	assert.True(t, tree.Remove(avl.Int(2)), "first remove")
	assert.Equal(t, 2, tree.Size(), "size after first remove")
	assert.True(t, tree.Contains(avl.Int(2)), "contains after first remove")

	assert.True(t, tree.Remove(avl.Int(2)), "second remove")
	assert.False(t, tree.Contains(avl.Int(2)), "contains after second remove")
	assert.Equal(t, 1, tree.NodeCount(), "node count after second remove")

	assert.False(t, tree.Remove(avl.Int(2)), "third remove")
	assert.Equal(t, 1, tree.Size(), "size after third remove")
}

func TestScenarioAscendingInsert(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, avl.Int(4), tree.Root().Key(), "root key")
	for _, s := range snapshot(tree) {
		assert.Equal(t, 0, s.balance, "balance of: %d", s.key)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Size(), "size")
	assert.Equal(t, 0, tree.NodeCount(), "node count")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.False(t, tree.Contains(avl.Int(1)), "contains")
	assert.False(t, tree.Remove(avl.Int(1)), "remove")
	assert.Nil(t, tree.First(), "first")
	assert.Nil(t, tree.Last(), "last")
	assert.Equal(t, []int64{}, ascending(t, tree), "ascending")
}

// every rotation kind, at the root and below it
func TestRotations(t *testing.T) {
	cases := []struct {
		name   string
		insert []int64
		root   int64
	}{
		{"right", []int64{3, 2, 1}, 2},
		{"left", []int64{1, 2, 3}, 2},
		{"left-right", []int64{3, 1, 2}, 2},
		{"right-left", []int64{1, 3, 2}, 2},
		{"right below root", []int64{10, 5, 15, 3, 2}, 10},
		{"left below root", []int64{10, 5, 15, 17, 20}, 10},
		{"left-right below root", []int64{10, 5, 15, 3, 4}, 10},
		{"right-left below root", []int64{10, 5, 15, 20, 17}, 10},
	}

	for _, c := range cases {
		tree := build(c.insert...)
		assert.Equal(t, avl.Int(c.root), tree.Root().Key(), "%s: root", c.name)
		assert.True(t, tree.CheckBalance(), "%s: balance", c.name)
		assert.True(t, tree.CheckUp(), "%s: parent links", c.name)
		assert.Nil(t, tree.Root().Parent(), "%s: root parent", c.name)
	}
}

// deletion of a two-child node whose successor is its right child
// and one where the successor lies deeper
func TestRemoveWithSuccessor(t *testing.T) {
	tree := build(4, 2, 6, 1, 3, 5, 7)

	assert.True(t, tree.Remove(avl.Int(6)), "adjacent successor")
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 7}, ascending(t, tree), "after adjacent")
	assert.True(t, tree.CheckBalance(), "balance after adjacent")
	assert.True(t, tree.CheckUp(), "parent links after adjacent")

	tree = build(4, 2, 6, 1, 3, 5, 7)
	assert.True(t, tree.Remove(avl.Int(4)), "deeper successor")
	assert.Equal(t, avl.Int(5), tree.Root().Key(), "new root")
	assert.Equal(t, []int64{1, 2, 3, 5, 6, 7}, ascending(t, tree), "after deeper")
	assert.True(t, tree.CheckBalance(), "balance after deeper")
	assert.True(t, tree.CheckUp(), "parent links after deeper")
}

// a deletion that needs rotations on more than one level
func TestRemoveCascade(t *testing.T) {
	// Fibonacci shaped tree: removing the shallowest leaf unbalances
	// two levels
	tree := build(8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	assert.True(t, tree.CheckBalance(), "balance before")

	assert.True(t, tree.Remove(avl.Int(12)), "remove")
	assert.True(t, tree.CheckBalance(), "balance after")
	assert.True(t, tree.CheckUp(), "parent links after")
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, ascending(t, tree), "order")
}

func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(20191001))
	tree := avl.New()
	present := []avl.Int{}

	for i := 0; i < 20000; i += 1 {
		if 0 == len(present) || r.Intn(3) > 0 {
			k := avl.Int(r.Int63n(5000))
			tree.Insert(k)
			present = append(present, k)
		} else {
			j := r.Intn(len(present))
			assert.True(t, tree.Remove(present[j]), "remove: %d", present[j])
			present[j] = present[len(present)-1]
			present = present[:len(present)-1]
		}
		if 0 == i%500 {
			assert.True(t, tree.CheckBalance(), "balance at step: %d", i)
			assert.True(t, tree.CheckUp(), "parent links at step: %d", i)
			assert.True(t, tree.CheckCounts(), "counts at step: %d", i)
		}
		h := float64(tree.Height())
		if h > maxHeight(tree.NodeCount()) {
			t.Fatalf("step: %d  height: %v exceeds bound: %v for: %d nodes", i, h, maxHeight(tree.NodeCount()), tree.NodeCount())
		}
	}
	assert.Equal(t, len(present), tree.Size(), "size")
}

// every check holds after each single operation of random workloads
func TestRandomOperationsKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed += 1 {
		r := rand.New(rand.NewSource(seed))
		tree := avl.New()
		for i := 0; i < 400; i += 1 {
			k := avl.Int(r.Int63n(64))
			if 0 == r.Intn(2) {
				tree.Insert(k)
			} else {
				tree.Remove(k)
			}
			if !tree.CheckUp() || !tree.CheckBalance() || !tree.CheckOrder() || !tree.CheckCounts() {
				t.Fatalf("seed: %d  step: %d  inconsistent tree after: %d", seed, i, k)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	before := snapshot(tree)

	// new key, no rotation on the way in
	assert.True(t, tree.Insert(avl.Int(8)), "insert new")
	assert.True(t, tree.Remove(avl.Int(8)), "remove new")
	assert.Equal(t, before, snapshot(tree), "after new key")

	// existing key only counts
	assert.False(t, tree.Insert(avl.Int(3)), "insert existing")
	assert.True(t, tree.Remove(avl.Int(3)), "remove existing")
	assert.Equal(t, before, snapshot(tree), "after existing key")

	// random keys keep the key/count multiset and node count
	r := rand.New(rand.NewSource(7))
	tree = avl.New()
	for i := 0; i < 300; i += 1 {
		tree.Insert(avl.Int(r.Int63n(200)))
	}
	keys := ascending(t, tree)
	nodes := tree.NodeCount()
	size := tree.Size()
	for i := 0; i < 100; i += 1 {
		k := avl.Int(r.Int63n(400))
		tree.Insert(k)
		tree.Remove(k)
		assert.Equal(t, nodes, tree.NodeCount(), "node count after: %d", k)
		assert.Equal(t, size, tree.Size(), "size after: %d", k)
		assert.True(t, tree.CheckBalance(), "balance after: %d", k)
	}
	assert.Equal(t, keys, ascending(t, tree), "keys")
}

// a fresh key whose insert rotates is not undone by its removal:
// keys, counts and balance survive but the shape may not
func TestRoundTripWithRotation(t *testing.T) {
	tree := build(2, 1, 3, 4)
	before := snapshot(tree)

	assert.True(t, tree.Insert(avl.Int(5)), "insert rotating key")
	assert.Equal(t, avl.Int(4), tree.Root().Right().Key(), "rotated into place")
	assert.True(t, tree.Remove(avl.Int(5)), "remove rotating key")

	assert.NotEqual(t, before, snapshot(tree), "shape")
	assert.Equal(t, []int64{1, 2, 3, 4}, ascending(t, tree), "keys")
	assert.Equal(t, 4, tree.NodeCount(), "node count")
	assert.Equal(t, 4, tree.Size(), "size")
	assert.True(t, tree.CheckBalance(), "balance")
	assert.True(t, tree.CheckUp(), "parent links")

	for seed := int64(1); seed <= 200; seed += 1 {
		r := rand.New(rand.NewSource(seed))
		tree := avl.New()
		for i := 0; i < 50; i += 1 {
			tree.Insert(avl.Int(r.Int63n(100)))
		}
		counts := make(map[int64]uint64)
		for _, k := range ascending(t, tree) {
			counts[k] = tree.Search(avl.Int(k)).Count()
		}
		size := tree.Size()

		k := avl.Int(100 + r.Int63n(100))
		tree.Insert(k)
		tree.Remove(k)

		if !tree.CheckBalance() || !tree.CheckUp() || !tree.CheckCounts() {
			t.Fatalf("seed: %d  inconsistent tree after: %d", seed, k)
		}
		after := make(map[int64]uint64)
		for _, k := range ascending(t, tree) {
			after[k] = tree.Search(avl.Int(k)).Count()
		}
		assert.Equal(t, counts, after, "seed: %d  counts", seed)
		assert.Equal(t, size, tree.Size(), "seed: %d  size", seed)
	}
}

func TestTrace(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)

	steps := []string{}
	found := tree.Trace(avl.Int(5), func(s avl.Step) {
		steps = append(steps, s.String())
	})
	assert.True(t, found, "found")
	assert.Equal(t, []string{"root", "right", "left"}, steps, "steps")

	steps = steps[:0]
	found = tree.Trace(avl.Int(0), func(s avl.Step) {
		steps = append(steps, s.String())
	})
	assert.False(t, found, "not found")
	assert.Equal(t, []string{"root", "left", "left"}, steps, "steps")
}

func TestStringKeys(t *testing.T) {
	tree := avl.New()
	for _, s := range []string{"pear", "apple", "fig", "apple"} {
		tree.Insert(avl.String(s))
	}
	assert.Equal(t, 3, tree.NodeCount(), "node count")
	assert.Equal(t, uint64(2), tree.Search(avl.String("apple")).Count(), "apple count")

	item, err := tree.Get(0)
	assert.Nil(t, err, "get")
	assert.Equal(t, avl.String("apple"), item, "first")
}
