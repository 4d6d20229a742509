// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58Seed()
	if nil != err {
		return err
	}
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	result := struct {
		Seed    string             `json:"seed"`
		Account account.Identifier `json:"account"`
	}{
		Seed:    seed,
		Account: key.Account(),
	}

	printJson(m.w, result)
	return nil
}
