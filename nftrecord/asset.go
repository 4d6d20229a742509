// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftrecord

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/layout"
)

// MaxAssetURILength - bytes in the asset URI field
const MaxAssetURILength = 200

// AssetRecordLength - bytes in a packed AssetRecord
const AssetRecordLength = 378

// AssetRecord - a single non-fungible asset
type AssetRecord struct {
	Collection     account.Identifier  `json:"collection"`
	Author         account.Identifier  `json:"author"`
	Proposal       account.Identifier  `json:"proposal"`
	Owner          account.Identifier  `json:"owner"`
	State          State               `json:"state"`
	CloseAuthority *account.Identifier `json:"closeAuthority"`
	AssetID        uint64              `json:"assetId"`
	MintTimestamp  uint64              `json:"mintTimestamp"`
	AssetURI       string              `json:"assetUri"`
}

var assetLayout = layout.New(
	layout.Field{Name: "collection", Kind: layout.Identifier},
	layout.Field{Name: "author", Kind: layout.Identifier},
	layout.Field{Name: "proposal", Kind: layout.Identifier},
	layout.Field{Name: "owner", Kind: layout.Identifier},
	layout.Field{Name: "state", Kind: layout.Tag},
	layout.Field{Name: "close_authority", Kind: layout.OptionalKey},
	layout.Field{Name: "asset_id", Kind: layout.Uint64},
	layout.Field{Name: "mint_timestamp", Kind: layout.Uint64},
	layout.Field{Name: "asset_uri", Kind: layout.String, Width: MaxAssetURILength, Overflow: fault.ErrAssetURITooLong},
)

// Pack - encode into exactly AssetRecordLength bytes
func (asset *AssetRecord) Pack() (Packed, error) {
	if asset.State >= stateLimit {
		return nil, fault.ErrInvalidStateTag
	}
	p := assetLayout.NewPacker()
	p.Identifier(asset.Collection)
	p.Identifier(asset.Author)
	p.Identifier(asset.Proposal)
	p.Identifier(asset.Owner)
	p.Tag(byte(asset.State))
	p.OptionalKey(asset.CloseAuthority)
	p.Uint64(asset.AssetID)
	p.Uint64(asset.MintTimestamp)
	p.BoundedString(asset.AssetURI)
	return p.Bytes()
}

// UnpackAsset - decode an asset, nil record on any error
func (record Packed) UnpackAsset() (*AssetRecord, error) {
	u, err := assetLayout.NewUnpacker(record)
	if nil != err {
		return nil, err
	}
	asset := &AssetRecord{
		Collection: u.Identifier(),
		Author:     u.Identifier(),
		Proposal:   u.Identifier(),
		Owner:      u.Identifier(),
	}
	state, err := StateFromByte(u.Tag())
	if nil != err {
		u.Fail(err)
	}
	asset.State = state
	asset.CloseAuthority = u.OptionalKey()
	asset.AssetID = u.Uint64()
	asset.MintTimestamp = u.Uint64()
	asset.AssetURI = u.BoundedString()

	if err := u.Err(); nil != err {
		return nil, err
	}
	return asset, nil
}

// IsFrozen - true if the asset is frozen
func (asset *AssetRecord) IsFrozen() bool {
	return Frozen == asset.State
}

// IsInitialised - true for initialised and frozen assets
func (asset *AssetRecord) IsInitialised() bool {
	return Uninitialised != asset.State
}

// BurnAuthority - close authority, or the owner when none is set
func (asset *AssetRecord) BurnAuthority() account.Identifier {
	if nil != asset.CloseAuthority {
		return *asset.CloseAuthority
	}
	return asset.Owner
}

// IsInitialisedAsset - probe the state byte without a full decode
func IsInitialisedAsset(buffer []byte) bool {
	offset, _ := assetLayout.Offset("state")
	if len(buffer) <= offset {
		return false
	}
	state, err := StateFromByte(buffer[offset])
	return nil == err && Uninitialised != state
}
