// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"github.com/bitmark-inc/avlindex/avl"
)

// Statistics - operation counters and current shape
type Statistics struct {
	Inserts   uint64 `json:"inserts"`
	Removes   uint64 `json:"removes"`
	Misses    uint64 `json:"misses"` // removes of absent keys
	Lookups   uint64 `json:"lookups"`
	CacheHits uint64 `json:"cacheHits"`
	Size      int    `json:"size"`
	Nodes     int    `json:"nodes"`
	Height    int    `json:"height"`
	Allocated int    `json:"allocated"` // nodes ever created, process wide
	Pooled    int    `json:"pooled"`    // of those, waiting for reuse
}

// Statistics - snapshot of the counters
func (s *Set) Statistics() Statistics {
	s.Lock()
	defer s.Unlock()

	stats := s.stats
	stats.Size = s.tree.Size()
	stats.Nodes = s.tree.NodeCount()
	stats.Height = s.tree.Height()
	stats.Allocated, stats.Pooled = avl.Allocated()
	return stats
}
