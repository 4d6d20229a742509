// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/nftrecord"
)

// MintParameters - values for a new asset
type MintParameters struct {
	Collection     account.Identifier
	Author         account.Identifier
	Proposal       account.Identifier
	Owner          account.Identifier
	CloseAuthority *account.Identifier
	AssetURI       string
	Timestamp      uint64
}

// MintAsset - add one asset to a collection
//
// returns the collection with its supply incremented and the new
// asset, whose id is the new supply
func MintAsset(collection *nftrecord.MintRecord, current *nftrecord.AssetRecord, parameters *MintParameters, signers account.SignerSet) (*nftrecord.MintRecord, *nftrecord.AssetRecord, error) {
	if err := checkMintable(collection); nil != err {
		return nil, nil, err
	}
	if collection.Supply >= collection.TotalSupply {
		return nil, nil, fault.ErrSupplyExhausted
	}
	state, _, err := Next(Mint, current.State)
	if nil != err {
		return nil, nil, err
	}
	if parameters.Owner.IsZero() {
		return nil, nil, fault.ErrInvalidIdentifier
	}

	if !signers.Contains(collection.MintAuthority) {
		return nil, nil, fault.ErrMissingMintAuthority
	}
	if !signers.Contains(parameters.Author) {
		return nil, nil, fault.ErrMissingAuthor
	}
	if !signers.Contains(parameters.Proposal) {
		return nil, nil, fault.ErrMissingProposal
	}

	newCollection := *collection
	newCollection.Supply += 1

	asset := &nftrecord.AssetRecord{
		Collection:     parameters.Collection,
		Author:         parameters.Author,
		Proposal:       parameters.Proposal,
		Owner:          parameters.Owner,
		State:          state,
		CloseAuthority: copyKey(parameters.CloseAuthority),
		AssetID:        newCollection.Supply,
		MintTimestamp:  parameters.Timestamp,
		AssetURI:       parameters.AssetURI,
	}
	return &newCollection, asset, nil
}

// TransferAsset - change the owner
func TransferAsset(asset *nftrecord.AssetRecord, from account.Identifier, to account.Identifier, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	state, _, err := Next(Transfer, asset.State)
	if nil != err {
		return nil, err
	}
	if to.IsZero() {
		return nil, fault.ErrInvalidIdentifier
	}
	if from != asset.Owner {
		return nil, fault.ErrNotOwner
	}
	if !signers.Contains(from) {
		return nil, fault.ErrMissingOwner
	}

	result := *asset
	result.Owner = to
	result.State = state
	return &result, nil
}

// FreezeAsset - stop transfers and burns until thawed
func FreezeAsset(collection *nftrecord.MintRecord, asset *nftrecord.AssetRecord, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	return freezeOrThaw(Freeze, collection, asset, signers)
}

// ThawAsset - undo a freeze
func ThawAsset(collection *nftrecord.MintRecord, asset *nftrecord.AssetRecord, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	return freezeOrThaw(Thaw, collection, asset, signers)
}

func freezeOrThaw(op Operation, collection *nftrecord.MintRecord, asset *nftrecord.AssetRecord, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	if !collection.IsInitialised {
		return nil, fault.ErrCollectionNotInitialised
	}
	if nil == collection.FreezeAuthority {
		return nil, fault.ErrFreezeAuthorityNotSet
	}
	state, _, err := Next(op, asset.State)
	if nil != err {
		return nil, err
	}
	if !signers.Contains(*collection.FreezeAuthority) {
		return nil, fault.ErrMissingFreezeAuthority
	}

	result := *asset
	result.State = state
	return &result, nil
}

// BurnAsset - check that the asset may be destroyed
//
// the caller removes the record
func BurnAsset(asset *nftrecord.AssetRecord, signers account.SignerSet) error {
	_, destroy, err := Next(Burn, asset.State)
	if nil != err {
		return err
	}
	if !destroy {
		return fault.ErrIllegalTransition
	}
	return checkCloser(asset, signers)
}

// AuthoriseClose - replace or remove the close authority
func AuthoriseClose(asset *nftrecord.AssetRecord, newAuthority *account.Identifier, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	if _, _, err := Next(CloseAuthorisation, asset.State); nil != err {
		return nil, err
	}
	if err := checkCloser(asset, signers); nil != err {
		return nil, err
	}

	result := *asset
	result.CloseAuthority = copyKey(newAuthority)
	return &result, nil
}

// UpdateAssetURI - replace the asset URI
func UpdateAssetURI(asset *nftrecord.AssetRecord, assetURI string, signers account.SignerSet) (*nftrecord.AssetRecord, error) {
	if _, _, err := Next(AssetURIUpdate, asset.State); nil != err {
		return nil, err
	}
	if err := checkCloser(asset, signers); nil != err {
		return nil, err
	}

	result := *asset
	result.AssetURI = assetURI
	return &result, nil
}

func checkCloser(asset *nftrecord.AssetRecord, signers account.SignerSet) error {
	if signers.Contains(asset.BurnAuthority()) {
		return nil
	}
	if nil == asset.CloseAuthority {
		return fault.ErrMissingOwner
	}
	return fault.ErrMissingCloseAuthority
}
