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

// CollectionParameters - values for a new collection
type CollectionParameters struct {
	MintAuthority   account.Identifier
	FreezeAuthority *account.Identifier
	Name            string
	Symbol          string
	IconURI         string
	TotalSupply     uint64
}

// CreateCollection - initialise an empty collection record
func CreateCollection(current *nftrecord.MintRecord, parameters *CollectionParameters, signers account.SignerSet) (*nftrecord.MintRecord, error) {
	if current.IsInitialised {
		return nil, fault.ErrRecordAlreadyInitialised
	}
	if 0 == parameters.TotalSupply {
		return nil, fault.ErrInvalidTotalSupply
	}
	if parameters.MintAuthority.IsZero() {
		return nil, fault.ErrInvalidIdentifier
	}
	if !signers.Contains(parameters.MintAuthority) {
		return nil, fault.ErrMissingMintAuthority
	}

	return &nftrecord.MintRecord{
		MintAuthority:   parameters.MintAuthority,
		Supply:          0,
		TotalSupply:     parameters.TotalSupply,
		IsInitialised:   true,
		Name:            parameters.Name,
		Symbol:          parameters.Symbol,
		FreezeAuthority: copyKey(parameters.FreezeAuthority),
		IconURI:         parameters.IconURI,
	}, nil
}

// AuthoriseMint - replace or clear the mint authority
//
// nil or the zero identifier clears it permanently
func AuthoriseMint(collection *nftrecord.MintRecord, newAuthority *account.Identifier, signers account.SignerSet) (*nftrecord.MintRecord, error) {
	if err := checkMintable(collection); nil != err {
		return nil, err
	}
	if !signers.Contains(collection.MintAuthority) {
		return nil, fault.ErrMissingMintAuthority
	}

	result := *collection
	if nil == newAuthority {
		result.MintAuthority = account.Identifier{}
	} else {
		result.MintAuthority = *newAuthority
	}
	return &result, nil
}

// AuthoriseFreeze - replace or remove the freeze authority
func AuthoriseFreeze(collection *nftrecord.MintRecord, newAuthority *account.Identifier, signers account.SignerSet) (*nftrecord.MintRecord, error) {
	if !collection.IsInitialised {
		return nil, fault.ErrCollectionNotInitialised
	}
	if nil == collection.FreezeAuthority {
		return nil, fault.ErrFreezeAuthorityNotSet
	}
	if !signers.Contains(*collection.FreezeAuthority) {
		return nil, fault.ErrMissingFreezeAuthority
	}

	result := *collection
	result.FreezeAuthority = copyKey(newAuthority)
	return &result, nil
}

// UpdateIcon - replace the collection icon URI
func UpdateIcon(collection *nftrecord.MintRecord, iconURI string, signers account.SignerSet) (*nftrecord.MintRecord, error) {
	if err := checkMintable(collection); nil != err {
		return nil, err
	}
	if !signers.Contains(collection.MintAuthority) {
		return nil, fault.ErrMissingMintAuthority
	}

	result := *collection
	result.IconURI = iconURI
	return &result, nil
}

func checkMintable(collection *nftrecord.MintRecord) error {
	if !collection.IsInitialised {
		return fault.ErrCollectionNotInitialised
	}
	if collection.IsMintAuthorityCleared() {
		return fault.ErrMintAuthorityCleared
	}
	return nil
}

func copyKey(key *account.Identifier) *account.Identifier {
	if nil == key {
		return nil
	}
	k := *key
	return &k
}
