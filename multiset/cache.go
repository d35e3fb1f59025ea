// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avlindex/avl"
)

const (
	defaultCleanup = 1 * time.Minute
)

// memo of positional lookups, only valid until the next mutation
type positionCache interface {
	Get(avl.Traversal, int) (int64, bool)
	Set(avl.Traversal, int, int64)
	Clear()
}

type lookupCache struct {
	cache *cache.Cache
}

// a disabled cache never remembers anything
type noCache struct{}

func newPositionCache(expiry time.Duration) positionCache {
	if expiry <= 0 {
		return noCache{}
	}
	cleanup := defaultCleanup
	if expiry > cleanup {
		cleanup = expiry
	}
	return &lookupCache{
		cache: cache.New(expiry, cleanup),
	}
}

func positionKey(order avl.Traversal, index int) string {
	return order.String() + ":" + strconv.Itoa(index)
}

func (c *lookupCache) Get(order avl.Traversal, index int) (int64, bool) {
	obj, found := c.cache.Get(positionKey(order, index))
	if !found {
		return 0, false
	}
	return obj.(int64), true
}

func (c *lookupCache) Set(order avl.Traversal, index int, key int64) {
	c.cache.Set(positionKey(order, index), key, cache.DefaultExpiration)
}

func (c *lookupCache) Clear() {
	c.cache.Flush()
}

func (noCache) Get(avl.Traversal, int) (int64, bool) { return 0, false }
func (noCache) Set(avl.Traversal, int, int64)        {}
func (noCache) Clear()                               {}
