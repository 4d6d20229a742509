// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/patrickmn/go-cache"
)

type operation int

const (
	dbPut operation = iota
	dbDelete
)

type cacheData struct {
	op    operation
	value []byte
}

// Cache - pending writes of an open transaction
type Cache interface {
	Clear()
	Delete(string)
	Get(string) (cacheData, bool)
	Set(string, []byte)
	Size() int
}

type cacheImpl struct {
	c *cache.Cache
}

func newCache() Cache {
	return &cacheImpl{
		c: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Clear - drop all pending entries
func (d *cacheImpl) Clear() {
	d.c.Flush()
}

// Delete - record a pending delete
func (d *cacheImpl) Delete(key string) {
	d.c.Set(key, cacheData{op: dbDelete, value: nil}, cache.NoExpiration)
}

// Get - the pending operation for key, if any
func (d *cacheImpl) Get(key string) (cacheData, bool) {
	obj, found := d.c.Get(key)
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

// Set - record a pending put
func (d *cacheImpl) Set(key string, value []byte) {
	d.c.Set(key, cacheData{op: dbPut, value: value}, cache.NoExpiration)
}

// Size - number of pending entries
func (d *cacheImpl) Size() int {
	return d.c.ItemCount()
}
