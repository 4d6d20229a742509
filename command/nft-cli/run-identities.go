// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type identityEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	HasKey      bool   `json:"hasKey"`
	Default     bool   `json:"default,omitempty"`
}

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entries := make([]identityEntry, 0, len(m.config.Identities))
	for _, name := range m.config.Names() {
		id := m.config.Identities[name]
		entries = append(entries, identityEntry{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			HasKey:      "" != id.Data,
			Default:     name == m.config.DefaultIdentity,
		})
	}

	printJson(m.w, entries)
	return nil
}
