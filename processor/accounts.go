// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/nftrecord"
)

func loadCollection(accounts *Accounts, address account.Identifier) (*nftrecord.MintRecord, error) {
	a := accounts.Collection
	if nil == a {
		return nil, fault.ErrMissingAccount
	}
	if address != a.Address {
		return nil, fault.ErrAccountMismatch
	}
	return a.Data.UnpackMint()
}

func loadAsset(accounts *Accounts, address account.Identifier) (*nftrecord.AssetRecord, error) {
	a := accounts.Asset
	if nil == a {
		return nil, fault.ErrMissingAccount
	}
	if address != a.Address {
		return nil, fault.ErrAccountMismatch
	}
	return a.Data.UnpackAsset()
}

// the collection account must be the one the asset was minted into
func loadAssetWithCollection(accounts *Accounts, address account.Identifier) (*nftrecord.MintRecord, *nftrecord.AssetRecord, error) {
	asset, err := loadAsset(accounts, address)
	if nil != err {
		return nil, nil, err
	}
	if !asset.IsInitialised() {
		return nil, nil, fault.ErrAssetNotInitialised
	}
	if nil == accounts.Collection {
		return nil, nil, fault.ErrMissingAccount
	}
	if asset.Collection != accounts.Collection.Address {
		return nil, nil, fault.ErrCollectionMismatch
	}
	collection, err := accounts.Collection.Data.UnpackMint()
	if nil != err {
		return nil, nil, err
	}
	return collection, asset, nil
}

func packCollection(collection *nftrecord.MintRecord) (*Result, error) {
	packed, err := collection.Pack()
	if nil != err {
		return nil, err
	}
	return &Result{Collection: packed}, nil
}

func packAsset(asset *nftrecord.AssetRecord) (*Result, error) {
	packed, err := asset.Pack()
	if nil != err {
		return nil, err
	}
	return &Result{Asset: packed}, nil
}

// both buffers or neither
func packBoth(collection *nftrecord.MintRecord, asset *nftrecord.AssetRecord) (*Result, error) {
	c, err := collection.Pack()
	if nil != err {
		return nil, err
	}
	a, err := asset.Pack()
	if nil != err {
		return nil, err
	}
	return &Result{Collection: c, Asset: a}, nil
}
