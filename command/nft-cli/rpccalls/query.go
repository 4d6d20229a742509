// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/rpc/ledger"
)

// GetCollection - fetch one collection record
func (client *Client) GetCollection(address account.Identifier) (*ledger.CollectionReply, error) {

	arguments := ledger.AddressArguments{
		Address: address,
	}

	client.trace("Collection Request", arguments)

	reply := &ledger.CollectionReply{}
	err := client.client.Call("Registry.Collection", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.trace("Collection Reply", reply)

	return reply, nil
}

// GetAsset - fetch one asset record
func (client *Client) GetAsset(address account.Identifier) (*ledger.AssetReply, error) {

	arguments := ledger.AddressArguments{
		Address: address,
	}

	client.trace("Asset Request", arguments)

	reply := &ledger.AssetReply{}
	err := client.client.Call("Registry.Asset", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.trace("Asset Reply", reply)

	return reply, nil
}

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner account.Identifier
	Start *account.Identifier
	Count int
}

// GetOwned - obtain one page of owned assets
func (client *Client) GetOwned(ownedConfig *OwnedData) (*ledger.OwnedReply, error) {

	arguments := ledger.OwnedArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.trace("Owned Request", arguments)

	reply := &ledger.OwnedReply{}
	err := client.client.Call("Registry.Owned", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.trace("Owned Reply", reply)

	return reply, nil
}
