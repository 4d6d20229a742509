// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a set of writes that are committed together
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type transactionData struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &transactionData{
		dataAccess: dataAccess,
	}
}

func (t *transactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transactionData) Put(h Handle, key []byte, value []byte) {
	h.(*PoolHandle).put(key, value)
}

func (t *transactionData) PutN(h Handle, key []byte, value uint64) {
	h.(*PoolHandle).putN(key, value)
}

func (t *transactionData) Delete(h Handle, key []byte) {
	h.(*PoolHandle).remove(key)
}

func (t *transactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *transactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *transactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *transactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *transactionData) Abort() {
	t.dataAccess.Abort()
}
