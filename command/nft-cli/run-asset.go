// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/command/nft-cli/rpccalls"
	"github.com/bitmark-inc/nftregistry/instruction"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkAccount(m.config, "collection", c.String("collection"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}
	self := key.Account()

	owner, err := optionalAccount(m.config, c.String("owner"), self)
	if nil != err {
		return err
	}
	author, err := optionalAccount(m.config, c.String("author"), self)
	if nil != err {
		return err
	}
	proposal, err := optionalAccount(m.config, c.String("proposal"), self)
	if nil != err {
		return err
	}
	closeAuthority, err := optionalAuthority(m.config, c.String("close"))
	if nil != err {
		return err
	}

	timestamp := c.Uint64("timestamp")
	if 0 == timestamp {
		timestamp = uint64(time.Now().Unix())
	}

	keys := []*account.PrivateKey{key}
	for _, name := range c.StringSlice("cosigner") {
		k, err := unlock(c, m, name)
		if nil != err {
			return err
		}
		keys = append(keys, k)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	program, err := m.config.ProgramID()
	if nil != err {
		return err
	}

	mint := &instruction.Mint{
		Collection:     collection,
		Asset:          account.DeriveAddress(program, collection, timestamp),
		Author:         author,
		Proposal:       proposal,
		Owner:          owner,
		CloseAuthority: closeAuthority,
		AssetURI:       c.String("uri"),
		Timestamp:      timestamp,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "collection: %s\n", collection)
		fmt.Fprintf(m.e, "asset: %s\n", mint.Asset)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "signers: %d\n", len(keys))
	}

	response, err := client.Submit(mint, keys...)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkAccount(m.config, "asset", c.String("asset"))
	if nil != err {
		return err
	}

	receiver, err := checkAccount(m.config, "receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}

	transfer := &instruction.Transfer{
		Asset: asset,
		From:  key.Account(),
		To:    receiver,
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(transfer, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runFreeze(c *cli.Context) error {
	return submitAssetInstruction(c, func(asset account.Identifier) instruction.Instruction {
		return &instruction.Freeze{Asset: asset}
	})
}

func runThaw(c *cli.Context) error {
	return submitAssetInstruction(c, func(asset account.Identifier) instruction.Instruction {
		return &instruction.Thaw{Asset: asset}
	})
}

func runBurn(c *cli.Context) error {
	return submitAssetInstruction(c, func(asset account.Identifier) instruction.Instruction {
		return &instruction.Burn{Asset: asset}
	})
}

// instructions that only name an asset and are signed by the current identity
func submitAssetInstruction(c *cli.Context, makeInstruction func(account.Identifier) instruction.Instruction) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkAccount(m.config, "asset", c.String("asset"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(makeInstruction(asset), key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAssetInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkAccount(m.config, "asset", c.String("asset"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAsset(asset)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		name, err := identityName(c, m)
		if nil != err {
			return err
		}
		owner = name
	}
	ownerAccount, err := lookupAccount(m.config, owner)
	if nil != err {
		return err
	}

	var start *account.Identifier
	if s := c.String("start"); "" != s {
		id, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		start = &id
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", ownerAccount)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	ownedConfig := &rpccalls.OwnedData{
		Owner: ownerAccount,
		Start: start,
		Count: count,
	}

	response, err := client.GetOwned(ownedConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
