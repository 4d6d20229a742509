// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/nftrecord"
	"github.com/bitmark-inc/nftregistry/processor"
)

var (
	collectionAddress = account.Identifier{0xc0}
	assetAddress      = account.Identifier{0xa0}
	mintAuthority     = account.Identifier{0x01}
	freezeAuthority   = account.Identifier{0x02}
	author            = account.Identifier{0x03}
	proposal          = account.Identifier{0x04}
	ownerO            = account.Identifier{0x05}
	ownerP            = account.Identifier{0x06}
	closer            = account.Identifier{0x07}
	stranger          = account.Identifier{0x08}
)

// ledger - buffers as a host would hold them
type ledger struct {
	collection nftrecord.Packed
	asset      nftrecord.Packed
}

func newLedger() *ledger {
	return &ledger{
		collection: nftrecord.Empty(nftrecord.MintRecordLength),
		asset:      nftrecord.Empty(nftrecord.AssetRecordLength),
	}
}

func (l *ledger) accounts() *processor.Accounts {
	return &processor.Accounts{
		Collection: &processor.Account{Address: collectionAddress, Data: l.collection},
		Asset:      &processor.Account{Address: assetAddress, Data: l.asset},
	}
}

// apply and, on success, replace the buffers
func (l *ledger) apply(t instruction.Instruction, signers ...account.Identifier) error {
	result, err := processor.Apply(t, l.accounts(), account.NewSignerSet(signers...))
	if nil != err {
		return err
	}
	if nil != result.Collection {
		l.collection = result.Collection
	}
	if nil != result.Asset {
		l.asset = result.Asset
	}
	return nil
}

func (l *ledger) snapshot() (nftrecord.Packed, nftrecord.Packed) {
	return append(nftrecord.Packed{}, l.collection...), append(nftrecord.Packed{}, l.asset...)
}

func createCollection(totalSupply uint64, withFreeze bool) *instruction.CreateCollection {
	c := &instruction.CreateCollection{
		Collection:    collectionAddress,
		MintAuthority: mintAuthority,
		Name:          "Gallery",
		Symbol:        "GAL",
		IconURI:       "https://gallery/icon.png",
		TotalSupply:   totalSupply,
	}
	if withFreeze {
		f := freezeAuthority
		c.FreezeAuthority = &f
	}
	return c
}

func mint(closeAuthority *account.Identifier) *instruction.Mint {
	return &instruction.Mint{
		Collection:     collectionAddress,
		Asset:          assetAddress,
		Author:         author,
		Proposal:       proposal,
		Owner:          ownerO,
		CloseAuthority: closeAuthority,
		AssetURI:       "ipfs://asset",
		Timestamp:      1600000000,
	}
}

func TestEndToEnd(t *testing.T) {
	l := newLedger()
	c := closer

	require.Nil(t, l.apply(createCollection(1, true), mintAuthority), "create")
	require.Nil(t, l.apply(mint(&c), mintAuthority, author, proposal), "mint")

	collection, err := l.collection.UnpackMint()
	require.Nil(t, err, "decode collection")
	assert.Equal(t, uint64(1), collection.Supply, "supply")

	require.Nil(t, l.apply(&instruction.Transfer{Asset: assetAddress, From: ownerO, To: ownerP}, ownerO), "transfer")

	asset, err := l.asset.UnpackAsset()
	require.Nil(t, err, "decode asset")
	assert.Equal(t, ownerP, asset.Owner, "owner after transfer")

	before, beforeAsset := l.snapshot()
	err = l.apply(&instruction.Freeze{Asset: assetAddress}, stranger)
	assert.Equal(t, fault.ErrMissingFreezeAuthority, err, "freeze by stranger")
	assert.True(t, fault.IsErrAuthorisation(err), "unauthorised class")
	assert.Equal(t, before, l.collection, "collection changed")
	assert.Equal(t, beforeAsset, l.asset, "asset changed")

	// supply is exhausted
	err = l.apply(mint(nil), mintAuthority, author, proposal)
	assert.Equal(t, fault.ErrSupplyExhausted, err, "second mint")

	result, err := processor.Apply(&instruction.Burn{Asset: assetAddress}, l.accounts(), account.NewSignerSet(closer))
	require.Nil(t, err, "burn")
	assert.True(t, result.Closed, "not closed")
	assert.Nil(t, result.Collection, "collection touched by burn")
	assert.Equal(t, make(nftrecord.Packed, nftrecord.AssetRecordLength), result.Asset, "burned buffer not zero")
}

func TestFrozenAsset(t *testing.T) {
	l := newLedger()
	require.Nil(t, l.apply(createCollection(2, true), mintAuthority), "create")
	require.Nil(t, l.apply(mint(nil), mintAuthority, author, proposal), "mint")
	require.Nil(t, l.apply(&instruction.Freeze{Asset: assetAddress}, freezeAuthority), "freeze")

	asset, err := l.asset.UnpackAsset()
	require.Nil(t, err, "decode asset")
	assert.True(t, asset.IsFrozen(), "not frozen")

	err = l.apply(&instruction.Burn{Asset: assetAddress}, ownerO)
	assert.Equal(t, fault.ErrAssetFrozen, err, "burn frozen")

	err = l.apply(&instruction.Transfer{Asset: assetAddress, From: ownerO, To: ownerP}, ownerO)
	assert.Equal(t, fault.ErrAssetFrozen, err, "transfer frozen")

	require.Nil(t, l.apply(&instruction.Thaw{Asset: assetAddress}, freezeAuthority), "thaw")

	err = l.apply(&instruction.Thaw{Asset: assetAddress}, freezeAuthority)
	assert.Equal(t, fault.ErrAssetNotFrozen, err, "thaw initialised")
	assert.True(t, fault.IsErrState(err), "state class")
}

func TestAuthoriseFreezeToNone(t *testing.T) {
	l := newLedger()
	require.Nil(t, l.apply(createCollection(1, true), mintAuthority), "create")
	require.Nil(t, l.apply(mint(nil), mintAuthority, author, proposal), "mint")

	clearFreeze := &instruction.Authorise{Target: collectionAddress, Kind: instruction.FreezeAuthority}
	require.Nil(t, l.apply(clearFreeze, freezeAuthority), "clear freeze authority")

	collection, err := l.collection.UnpackMint()
	require.Nil(t, err, "decode collection")
	assert.Nil(t, collection.FreezeAuthority, "freeze authority")

	err = l.apply(&instruction.Freeze{Asset: assetAddress}, freezeAuthority)
	assert.Equal(t, fault.ErrFreezeAuthorityNotSet, err, "freeze after clear")
	assert.True(t, fault.IsErrState(err), "state class")
}

func TestAuthoriseAndUpdate(t *testing.T) {
	l := newLedger()
	require.Nil(t, l.apply(createCollection(1, false), mintAuthority), "create")
	require.Nil(t, l.apply(mint(nil), mintAuthority, author, proposal), "mint")

	c := closer
	require.Nil(t, l.apply(&instruction.Authorise{Target: assetAddress, Kind: instruction.CloseAuthority, NewAuthority: &c}, ownerO), "set closer")
	require.Nil(t, l.apply(&instruction.Update{Target: assetAddress, Kind: instruction.AssetURI, Value: "ipfs://new"}, closer), "update uri")
	require.Nil(t, l.apply(&instruction.Update{Target: collectionAddress, Kind: instruction.IconURI, Value: "icon2"}, mintAuthority), "update icon")

	s := stranger
	require.Nil(t, l.apply(&instruction.Authorise{Target: collectionAddress, Kind: instruction.MintAuthority, NewAuthority: &s}, mintAuthority), "move mint")

	asset, err := l.asset.UnpackAsset()
	require.Nil(t, err, "decode asset")
	assert.Equal(t, "ipfs://new", asset.AssetURI, "uri")
	assert.Equal(t, &c, asset.CloseAuthority, "closer")

	collection, err := l.collection.UnpackMint()
	require.Nil(t, err, "decode collection")
	assert.Equal(t, "icon2", collection.IconURI, "icon")
	assert.Equal(t, stranger, collection.MintAuthority, "mint authority")

	err = l.apply(&instruction.Update{Target: assetAddress, Kind: instruction.AssetURI, Value: strings.Repeat("u", 201)}, closer)
	assert.Equal(t, fault.ErrAssetURITooLong, err, "long uri")
}

func TestOverflowAtCreate(t *testing.T) {
	l := newLedger()
	create := createCollection(1, false)
	create.Name = strings.Repeat("n", 33)

	err := l.apply(create, mintAuthority)
	assert.Equal(t, fault.ErrNameTooLong, err, "long name")
	assert.True(t, fault.IsErrOverflow(err), "overflow class")
	assert.True(t, bytes.Equal(make([]byte, nftrecord.MintRecordLength), l.collection), "buffer written")
}

func TestAccountChecks(t *testing.T) {
	l := newLedger()
	require.Nil(t, l.apply(createCollection(1, true), mintAuthority), "create")

	wrong := createCollection(1, false)
	wrong.Collection = stranger
	err := l.apply(wrong, mintAuthority)
	assert.Equal(t, fault.ErrAccountMismatch, err, "wrong collection address")

	err = l.apply(createCollection(1, false), mintAuthority)
	assert.Equal(t, fault.ErrRecordAlreadyInitialised, err, "re-create")

	_, err = processor.Apply(mint(nil), &processor.Accounts{}, account.NewSignerSet(mintAuthority))
	assert.Equal(t, fault.ErrMissingAccount, err, "missing accounts")

	require.Nil(t, l.apply(mint(nil), mintAuthority, author, proposal), "mint")

	// collection account that is not the asset's collection
	accounts := l.accounts()
	accounts.Collection.Address = stranger
	_, err = processor.Apply(&instruction.Freeze{Asset: assetAddress}, accounts, account.NewSignerSet(freezeAuthority))
	assert.Equal(t, fault.ErrCollectionMismatch, err, "wrong collection")

	err = l.apply(&instruction.Burn{Asset: stranger}, ownerO)
	assert.Equal(t, fault.ErrAccountMismatch, err, "wrong asset address")
}

func TestMalformedBuffers(t *testing.T) {
	l := newLedger()
	l.collection = l.collection[:100]
	err := l.apply(createCollection(1, false), mintAuthority)
	assert.Equal(t, fault.ErrBufferLength, err, "short collection buffer")
	assert.True(t, fault.IsErrMalformed(err), "malformed class")

	l = newLedger()
	l.asset[128] = 9
	err = l.apply(&instruction.Burn{Asset: assetAddress}, ownerO)
	assert.Equal(t, fault.ErrInvalidStateTag, err, "bad state byte")

	err = l.apply(&instruction.Burn{Asset: assetAddress}, ownerO)
	assert.Equal(t, fault.ErrInvalidStateTag, err, "buffer repaired")
}

func TestNotInitialised(t *testing.T) {
	l := newLedger()

	err := l.apply(&instruction.Transfer{Asset: assetAddress, From: ownerO, To: ownerP}, ownerO)
	assert.Equal(t, fault.ErrAssetNotInitialised, err, "transfer uninitialised")
	assert.True(t, fault.IsErrNotInitialised(err), "class")

	err = l.apply(mint(nil), mintAuthority, author, proposal)
	assert.Equal(t, fault.ErrCollectionNotInitialised, err, "mint into empty collection")

	err = l.apply(&instruction.Freeze{Asset: assetAddress}, freezeAuthority)
	assert.Equal(t, fault.ErrAssetNotInitialised, err, "freeze uninitialised")
}
