// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nftrecord - collection and asset records
//
// Both records have a fixed size so they can live in preallocated
// ledger buffers:
//
//	MintRecord  (a collection)    322 bytes
//	AssetRecord (a single asset)  378 bytes
//
// An all-zero buffer of the right size decodes to an uninitialised
// record.
package nftrecord
