// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/instruction"
)

func runCreateCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("collection name is required")
	}
	symbol := c.String("symbol")
	if "" == symbol {
		return fmt.Errorf("collection symbol is required")
	}
	supply := c.Uint64("supply")
	if 0 == supply {
		return fmt.Errorf("total supply is required")
	}

	collection, err := collectionAddress(c.String("collection"))
	if nil != err {
		return err
	}

	return createCollection(c, m, collection, name, symbol, supply)
}

// the given address or a fresh random one
func collectionAddress(value string) (account.Identifier, error) {
	if "" != value {
		return account.FromBase58(value)
	}

	// random address that no key holder controls
	seed, err := account.NewBase58Seed()
	if nil != err {
		return account.Identifier{}, err
	}
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return account.Identifier{}, err
	}
	return key.Account(), nil
}

func createCollection(c *cli.Context, m *metadata, collection account.Identifier, name string, symbol string, supply uint64) error {

	freeze, err := optionalAuthority(m.config, c.String("freeze"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}

	create := &instruction.CreateCollection{
		Collection:      collection,
		MintAuthority:   key.Account(),
		FreezeAuthority: freeze,
		Name:            name,
		Symbol:          symbol,
		IconURI:         c.String("icon"),
		TotalSupply:     supply,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "collection: %s\n", collection)
		fmt.Fprintf(m.e, "supply: %d\n", supply)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(create, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runAuthorise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAccount(m.config, "target", c.String("target"))
	if nil != err {
		return err
	}

	kind, err := instruction.AuthorityKindFromString(c.String("kind"))
	if nil != err {
		return err
	}

	if "" == c.String("new") {
		return fmt.Errorf("new authority is required, use %s to clear", clearAuthority)
	}
	newAuthority, err := optionalAuthority(m.config, c.String("new"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}

	authorise := &instruction.Authorise{
		Target:       target,
		Kind:         kind,
		NewAuthority: newAuthority,
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(authorise, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAccount(m.config, "target", c.String("target"))
	if nil != err {
		return err
	}

	kind, err := instruction.UpdateKindFromString(c.String("kind"))
	if nil != err {
		return err
	}

	key, err := currentKey(c, m)
	if nil != err {
		return err
	}

	update := &instruction.Update{
		Target: target,
		Kind:   kind,
		Value:  c.String("uri"),
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(update, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCollectionInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkAccount(m.config, "collection", c.String("collection"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCollection(collection)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
