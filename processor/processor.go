// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - apply one instruction to record buffers
//
// Apply decodes the supplied buffers, checks the lifecycle rules
// against the verified signers, and encodes new buffers.  The input
// buffers are never written; on error the result is nil.
package processor

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/lifecycle"
	"github.com/bitmark-inc/nftregistry/nftrecord"
)

// Account - a ledger buffer and its address
type Account struct {
	Address account.Identifier
	Data    nftrecord.Packed
}

// Accounts - the buffers an instruction may touch
type Accounts struct {
	Collection *Account
	Asset      *Account
}

// Result - replacement buffers, nil where nothing changed
//
// Closed means the asset record is destroyed and Asset holds a zero
// buffer
type Result struct {
	Collection nftrecord.Packed
	Asset      nftrecord.Packed
	Closed     bool
}

// Apply - decode, authorise, mutate and encode
func Apply(t instruction.Instruction, accounts *Accounts, signers account.SignerSet) (*Result, error) {
	if nil == accounts {
		return nil, fault.ErrMissingAccount
	}

	switch tx := t.(type) {

	case *instruction.CreateCollection:
		current, err := loadCollection(accounts, tx.Collection)
		if nil != err {
			return nil, err
		}
		parameters := &lifecycle.CollectionParameters{
			MintAuthority:   tx.MintAuthority,
			FreezeAuthority: tx.FreezeAuthority,
			Name:            tx.Name,
			Symbol:          tx.Symbol,
			IconURI:         tx.IconURI,
			TotalSupply:     tx.TotalSupply,
		}
		collection, err := lifecycle.CreateCollection(current, parameters, signers)
		if nil != err {
			return nil, err
		}
		return packCollection(collection)

	case *instruction.Mint:
		collection, err := loadCollection(accounts, tx.Collection)
		if nil != err {
			return nil, err
		}
		asset, err := loadAsset(accounts, tx.Asset)
		if nil != err {
			return nil, err
		}
		parameters := &lifecycle.MintParameters{
			Collection:     tx.Collection,
			Author:         tx.Author,
			Proposal:       tx.Proposal,
			Owner:          tx.Owner,
			CloseAuthority: tx.CloseAuthority,
			AssetURI:       tx.AssetURI,
			Timestamp:      tx.Timestamp,
		}
		newCollection, newAsset, err := lifecycle.MintAsset(collection, asset, parameters, signers)
		if nil != err {
			return nil, err
		}
		return packBoth(newCollection, newAsset)

	case *instruction.Transfer:
		asset, err := loadAsset(accounts, tx.Asset)
		if nil != err {
			return nil, err
		}
		newAsset, err := lifecycle.TransferAsset(asset, tx.From, tx.To, signers)
		if nil != err {
			return nil, err
		}
		return packAsset(newAsset)

	case *instruction.Freeze:
		collection, asset, err := loadAssetWithCollection(accounts, tx.Asset)
		if nil != err {
			return nil, err
		}
		newAsset, err := lifecycle.FreezeAsset(collection, asset, signers)
		if nil != err {
			return nil, err
		}
		return packAsset(newAsset)

	case *instruction.Thaw:
		collection, asset, err := loadAssetWithCollection(accounts, tx.Asset)
		if nil != err {
			return nil, err
		}
		newAsset, err := lifecycle.ThawAsset(collection, asset, signers)
		if nil != err {
			return nil, err
		}
		return packAsset(newAsset)

	case *instruction.Burn:
		asset, err := loadAsset(accounts, tx.Asset)
		if nil != err {
			return nil, err
		}
		err = lifecycle.BurnAsset(asset, signers)
		if nil != err {
			return nil, err
		}
		return &Result{
			Asset:  nftrecord.Empty(nftrecord.AssetRecordLength),
			Closed: true,
		}, nil

	case *instruction.Authorise:
		return authorise(tx, accounts, signers)

	case *instruction.Update:
		return update(tx, accounts, signers)

	default:
		return nil, fault.ErrUnknownInstruction
	}
}

func authorise(tx *instruction.Authorise, accounts *Accounts, signers account.SignerSet) (*Result, error) {
	switch tx.Kind {
	case instruction.MintAuthority, instruction.FreezeAuthority:
		collection, err := loadCollection(accounts, tx.Target)
		if nil != err {
			return nil, err
		}
		var newCollection *nftrecord.MintRecord
		if instruction.MintAuthority == tx.Kind {
			newCollection, err = lifecycle.AuthoriseMint(collection, tx.NewAuthority, signers)
		} else {
			newCollection, err = lifecycle.AuthoriseFreeze(collection, tx.NewAuthority, signers)
		}
		if nil != err {
			return nil, err
		}
		return packCollection(newCollection)

	case instruction.CloseAuthority:
		asset, err := loadAsset(accounts, tx.Target)
		if nil != err {
			return nil, err
		}
		newAsset, err := lifecycle.AuthoriseClose(asset, tx.NewAuthority, signers)
		if nil != err {
			return nil, err
		}
		return packAsset(newAsset)

	default:
		return nil, fault.ErrInvalidAuthorityKind
	}
}

func update(tx *instruction.Update, accounts *Accounts, signers account.SignerSet) (*Result, error) {
	switch tx.Kind {
	case instruction.IconURI:
		collection, err := loadCollection(accounts, tx.Target)
		if nil != err {
			return nil, err
		}
		newCollection, err := lifecycle.UpdateIcon(collection, tx.Value, signers)
		if nil != err {
			return nil, err
		}
		return packCollection(newCollection)

	case instruction.AssetURI:
		asset, err := loadAsset(accounts, tx.Target)
		if nil != err {
			return nil, err
		}
		newAsset, err := lifecycle.UpdateAssetURI(asset, tx.Value, signers)
		if nil != err {
			return nil, err
		}
		return packAsset(newAsset)

	default:
		return nil, fault.ErrInvalidUpdateKind
	}
}
