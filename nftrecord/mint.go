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

// maximum bytes in the bounded strings
const (
	MaxNameLength    = 32
	MaxSymbolLength  = 8
	MaxIconURILength = 200
)

// MintRecordLength - bytes in a packed MintRecord
const MintRecordLength = 322

// MintRecord - a collection
//
// a cleared mint authority is stored as the all-zero identifier and
// can never be set again
type MintRecord struct {
	MintAuthority   account.Identifier  `json:"mintAuthority"`
	Supply          uint64              `json:"supply"`
	TotalSupply     uint64              `json:"totalSupply"`
	IsInitialised   bool                `json:"isInitialised"`
	Name            string              `json:"name"`
	Symbol          string              `json:"symbol"`
	FreezeAuthority *account.Identifier `json:"freezeAuthority"`
	IconURI         string              `json:"iconUri"`
}

var mintLayout = layout.New(
	layout.Field{Name: "mint_authority", Kind: layout.Identifier},
	layout.Field{Name: "supply", Kind: layout.Uint64},
	layout.Field{Name: "total_supply", Kind: layout.Uint64},
	layout.Field{Name: "is_initialized", Kind: layout.Bool},
	layout.Field{Name: "name", Kind: layout.String, Width: MaxNameLength, Overflow: fault.ErrNameTooLong},
	layout.Field{Name: "symbol", Kind: layout.String, Width: MaxSymbolLength, Overflow: fault.ErrSymbolTooLong},
	layout.Field{Name: "freeze_authority", Kind: layout.OptionalKey},
	layout.Field{Name: "icon_uri", Kind: layout.String, Width: MaxIconURILength, Overflow: fault.ErrIconURITooLong},
)

// Pack - encode into exactly MintRecordLength bytes
func (mint *MintRecord) Pack() (Packed, error) {
	p := mintLayout.NewPacker()
	p.Identifier(mint.MintAuthority)
	p.Uint64(mint.Supply)
	p.Uint64(mint.TotalSupply)
	p.Bool(mint.IsInitialised)
	p.BoundedString(mint.Name)
	p.BoundedString(mint.Symbol)
	p.OptionalKey(mint.FreezeAuthority)
	p.BoundedString(mint.IconURI)
	return p.Bytes()
}

// UnpackMint - decode a collection, nil record on any error
func (record Packed) UnpackMint() (*MintRecord, error) {
	u, err := mintLayout.NewUnpacker(record)
	if nil != err {
		return nil, err
	}
	mint := &MintRecord{
		MintAuthority:   u.Identifier(),
		Supply:          u.Uint64(),
		TotalSupply:     u.Uint64(),
		IsInitialised:   u.Bool(),
		Name:            u.BoundedString(),
		Symbol:          u.BoundedString(),
		FreezeAuthority: u.OptionalKey(),
		IconURI:         u.BoundedString(),
	}
	if err := u.Err(); nil != err {
		return nil, err
	}
	return mint, nil
}

// IsMintAuthorityCleared - true once the mint authority was set to none
func (mint *MintRecord) IsMintAuthorityCleared() bool {
	return mint.MintAuthority.IsZero()
}

// IsInitialisedMint - probe the initialised flag without a full decode
func IsInitialisedMint(buffer []byte) bool {
	offset, _ := mintLayout.Offset("is_initialized")
	if len(buffer) <= offset {
		return false
	}
	return 1 == buffer[offset]
}

func init() {
	if MintRecordLength != mintLayout.Size() {
		panic("nftrecord: mint layout size mismatch")
	}
	if AssetRecordLength != assetLayout.Size() {
		panic("nftrecord: asset layout size mismatch")
	}
}
