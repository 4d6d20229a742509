// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/nftrecord"
	"github.com/bitmark-inc/nftregistry/processor"
	"github.com/bitmark-inc/nftregistry/storage"
)

// decide which records an instruction touches and read them
//
// absent records are supplied as zero buffers; the asset record as it
// was before the instruction is returned for owner index maintenance
func (r *Registry) load(trx storage.Transaction, t instruction.Instruction) (*processor.Accounts, *nftrecord.AssetRecord, error) {

	var collection *account.Identifier
	var asset *account.Identifier

	switch tx := t.(type) {
	case *instruction.CreateCollection:
		collection = &tx.Collection
	case *instruction.Mint:
		collection = &tx.Collection
		asset = &tx.Asset
	case *instruction.Transfer:
		asset = &tx.Asset
	case *instruction.Freeze:
		asset = &tx.Asset
	case *instruction.Thaw:
		asset = &tx.Asset
	case *instruction.Burn:
		asset = &tx.Asset
	case *instruction.Authorise:
		if instruction.CloseAuthority == tx.Kind {
			asset = &tx.Target
		} else {
			collection = &tx.Target
		}
	case *instruction.Update:
		if instruction.AssetURI == tx.Kind {
			asset = &tx.Target
		} else {
			collection = &tx.Target
		}
	default:
		return nil, nil, fault.ErrUnknownInstruction
	}

	accounts := &processor.Accounts{}
	var previous *nftrecord.AssetRecord

	if nil != asset {
		accounts.Asset = r.read(trx, r.pools.Assets, *asset, nftrecord.AssetRecordLength)

		if nftrecord.IsInitialisedAsset(accounts.Asset.Data) {
			record, err := accounts.Asset.Data.UnpackAsset()
			if nil != err {
				return nil, nil, err
			}
			previous = record

			// freeze and thaw name only the asset
			if nil == collection {
				switch t.(type) {
				case *instruction.Freeze, *instruction.Thaw:
					collection = &record.Collection
				}
			}
		}
	}

	if nil != collection {
		accounts.Collection = r.read(trx, r.pools.Collections, *collection, nftrecord.MintRecordLength)
	}

	return accounts, previous, nil
}

func (r *Registry) read(trx storage.Transaction, pool storage.Handle, address account.Identifier, length int) *processor.Account {
	data := trx.Get(pool, address.Bytes())
	if nil == data {
		data = nftrecord.Empty(length)
	} else {
		// storage may reuse the slice
		data = append(nftrecord.Packed(nil), data...)
	}
	return &processor.Account{
		Address: address,
		Data:    data,
	}
}
