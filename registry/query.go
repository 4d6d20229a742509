// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/nftrecord"
)

// MaximumOwnedCount - largest page returned by Owned
const MaximumOwnedCount = 100

// AssetInfo - an asset record with the names of its collection
type AssetInfo struct {
	Address          account.Identifier     `json:"address"`
	Record           *nftrecord.AssetRecord `json:"record"`
	CollectionName   string                 `json:"collectionName"`
	CollectionSymbol string                 `json:"collectionSymbol"`
}

// OwnedAsset - one entry of the owner index
type OwnedAsset struct {
	Asset      account.Identifier `json:"asset"`
	Collection account.Identifier `json:"collection"`
}

// Owned - one page of assets held by an owner
type Owned struct {
	Owner  account.Identifier  `json:"owner"`
	Total  uint64              `json:"total"`
	Assets []OwnedAsset        `json:"assets"`
	Next   *account.Identifier `json:"next,omitempty"`
}

// Collection - read a collection record
func (r *Registry) Collection(address account.Identifier) (*nftrecord.MintRecord, error) {
	r.RLock()
	defer r.RUnlock()

	return r.collection(address)
}

func (r *Registry) collection(address account.Identifier) (*nftrecord.MintRecord, error) {
	data := r.pools.Collections.Get(address.Bytes())
	if nil == data {
		return nil, fault.ErrCollectionNotFound
	}
	return nftrecord.Packed(data).UnpackMint()
}

// Asset - read an asset record and its collection names
func (r *Registry) Asset(address account.Identifier) (*AssetInfo, error) {
	r.RLock()
	defer r.RUnlock()

	data := r.pools.Assets.Get(address.Bytes())
	if nil == data {
		return nil, fault.ErrAssetNotFound
	}
	asset, err := nftrecord.Packed(data).UnpackAsset()
	if nil != err {
		return nil, err
	}

	info := &AssetInfo{
		Address: address,
		Record:  asset,
	}

	collection, err := r.collection(asset.Collection)
	if nil != err {
		r.log.Warnf("asset: %s  collection: %s  error: %s", address, asset.Collection, err)
		return info, nil
	}
	info.CollectionName = collection.Name
	info.CollectionSymbol = collection.Symbol
	return info, nil
}

// Owned - assets held by owner in address order
//
// start is the first asset address to return (nil for the beginning),
// Next is set when more assets may follow
func (r *Registry) Owned(owner account.Identifier, start *account.Identifier, count int) (*Owned, error) {
	if count <= 0 || count > MaximumOwnedCount {
		return nil, fault.ErrInvalidCount
	}

	r.RLock()
	defer r.RUnlock()

	total, _ := r.pools.OwnerCount.GetN(owner.Bytes())

	cursor := r.pools.OwnerIndex.NewFetchCursor().Prefix(owner.Bytes())
	if nil != start {
		cursor.Seek(ownerKey(owner, *start))
	}

	// one extra to decide whether there is a next page
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, err
	}

	result := &Owned{
		Owner:  owner,
		Total:  total,
		Assets: make([]OwnedAsset, 0, count),
	}

	for i, e := range elements {
		asset, err := account.FromBytes(e.Key[account.IdentifierLength:])
		if nil != err {
			return nil, err
		}
		if i == count {
			result.Next = &asset
			break
		}
		collection, err := account.FromBytes(e.Value)
		if nil != err {
			return nil, err
		}
		result.Assets = append(result.Assets, OwnedAsset{
			Asset:      asset,
			Collection: collection,
		})
	}
	return result, nil
}
