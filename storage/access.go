// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/nftregistry/fault"
)

// Access - low level access to the database through a batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type accessImpl struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &accessImpl{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - mark the start of a batch
func (d *accessImpl) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}
	d.inUse = true
	return nil
}

// Put - queue a write
func (d *accessImpl) Put(key []byte, value []byte) {
	d.Lock()
	d.cache.Set(string(key), value)
	d.batch.Put(key, value)
	d.Unlock()
}

// Delete - queue a delete
func (d *accessImpl) Delete(key []byte) {
	d.Lock()
	d.cache.Delete(string(key))
	d.batch.Delete(key)
	d.Unlock()
}

// Get - read a value, pending writes take precedence
func (d *accessImpl) Get(key []byte) ([]byte, error) {
	d.Lock()
	data, found := d.cache.Get(string(key))
	d.Unlock()

	if found {
		if dbDelete == data.op {
			return nil, leveldb.ErrNotFound
		}
		return data.value, nil
	}
	return d.db.Get(key, nil)
}

// Has - check key existence, pending writes take precedence
func (d *accessImpl) Has(key []byte) (bool, error) {
	d.Lock()
	data, found := d.cache.Get(string(key))
	d.Unlock()

	if found {
		return dbPut == data.op, nil
	}
	return d.db.Has(key, nil)
}

// Commit - write the batch and end the transaction
func (d *accessImpl) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard the batch and end the transaction
func (d *accessImpl) Abort() {
	d.Lock()
	d.reset()
	d.Unlock()
}

// InUse - true while a transaction is open
func (d *accessImpl) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Iterator - committed data only
func (d *accessImpl) Iterator(searchRange *util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessImpl) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
