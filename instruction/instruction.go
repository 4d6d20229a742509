// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"github.com/bitmark-inc/nftregistry/account"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a varint after the program identifier at the start of "Packed"
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	// valid instruction types
	CreateCollectionTag = TagType(iota) // new collection
	MintTag             = TagType(iota) // new asset in a collection
	TransferTag         = TagType(iota) // change asset owner
	FreezeTag           = TagType(iota) // freeze an asset
	ThawTag             = TagType(iota) // thaw a frozen asset
	BurnTag             = TagType(iota) // destroy an asset
	AuthoriseTag        = TagType(iota) // replace or clear an authority
	UpdateTag           = TagType(iota) // replace a URI

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack(program account.Identifier) (Packed, error)
}

// byte sizes for various fields
const (
	maxStringLength    = 1024
	maxSignatureLength = 1024
	maxSigners         = 16
)

// CreateCollection - set up a new collection record
type CreateCollection struct {
	Collection      account.Identifier  `json:"collection"`
	MintAuthority   account.Identifier  `json:"mintAuthority"`
	FreezeAuthority *account.Identifier `json:"freezeAuthority"`
	Name            string              `json:"name"`
	Symbol          string              `json:"symbol"`
	IconURI         string              `json:"iconUri"`
	TotalSupply     uint64              `json:"totalSupply"`
}

// Mint - create one asset in a collection
type Mint struct {
	Collection     account.Identifier  `json:"collection"`
	Asset          account.Identifier  `json:"asset"`
	Author         account.Identifier  `json:"author"`
	Proposal       account.Identifier  `json:"proposal"`
	Owner          account.Identifier  `json:"owner"`
	CloseAuthority *account.Identifier `json:"closeAuthority"`
	AssetURI       string              `json:"assetUri"`
	Timestamp      uint64              `json:"timestamp"`
}

// Transfer - move an asset to a new owner
type Transfer struct {
	Asset account.Identifier `json:"asset"`
	From  account.Identifier `json:"from"`
	To    account.Identifier `json:"to"`
}

// Freeze - stop an asset from moving
type Freeze struct {
	Asset account.Identifier `json:"asset"`
}

// Thaw - release a frozen asset
type Thaw struct {
	Asset account.Identifier `json:"asset"`
}

// Burn - destroy an asset
type Burn struct {
	Asset account.Identifier `json:"asset"`
}

// Authorise - replace or clear (nil NewAuthority) one authority
//
// Target is the collection for mint and freeze, the asset for close
type Authorise struct {
	Target       account.Identifier  `json:"target"`
	Kind         AuthorityKind       `json:"kind"`
	NewAuthority *account.Identifier `json:"newAuthority"`
}

// Update - replace a URI
//
// Target is the collection for icon, the asset for asset
type Update struct {
	Target account.Identifier `json:"target"`
	Kind   UpdateKind         `json:"kind"`
	Value  string             `json:"value"`
}

// String - hex form for use by the fmt package (for %s)
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - hex form for JSON
func (record Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - hex form from JSON
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*record = b[:n]
	return nil
}
