// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte identifier of a ledger record
// 4. owner        = 32 byte public key
// 5. count        = big endian uint64 (8 bytes)
//
// Records:
//
//	C ++ address          - collection
//	                        data: packed MintRecord (322 bytes)
//	A ++ address          - asset
//	                        data: packed AssetRecord (378 bytes)
//
// Ownership:
//
//	O ++ owner ++ address - assets held by owner
//	                        data: collection address
//	N ++ owner            - number of assets held by owner
//	                        data: count
//
// All writes go through a Transaction: they are collected in a
// LevelDB batch and become visible together on Commit.  Reads inside
// an open transaction see its pending writes.
package storage

//go:generate mockgen -source=handle.go -destination=mocks/handle.go -package=mocks
//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks
