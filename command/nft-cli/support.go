// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/command/nft-cli/configuration"
	"github.com/bitmark-inc/nftregistry/command/nft-cli/rpccalls"
	"github.com/bitmark-inc/nftregistry/fault"
)

var (
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredProgram     = fault.InvalidError("program is required")
	ErrRequiredSeed        = fault.InvalidError("seed or new is required")
)

// value of an authority option that clears the authority
const clearAuthority = "NONE"

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required.
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// program is required and must decode
func checkProgram(program string) (string, error) {
	if "" == program {
		return "", ErrRequiredProgram
	}
	if _, err := account.FromBase58(program); nil != err {
		return "", err
	}
	return program, nil
}

// exactly one of an existing seed or a new one
func checkSeed(seed string, new bool) (string, error) {
	switch {
	case "" == seed && new:
		return account.NewBase58Seed()
	case "" != seed && !new:
		if _, err := account.PrivateKeyFromBase58Seed(seed); nil != err {
			return "", err
		}
		return seed, nil
	case "" == seed:
		return "", ErrRequiredSeed
	default:
		return "", fault.ErrIncompatibleOptions
	}
}

// check if file exists, true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// required address given as an identity name or a Base58 account
func checkAccount(config *configuration.Configuration, title string, value string) (account.Identifier, error) {
	if "" == value {
		return account.Identifier{}, fmt.Errorf("%s is required", title)
	}
	return lookupAccount(config, value)
}

// optional address, blank gives a default
func optionalAccount(config *configuration.Configuration, value string, defaultAccount account.Identifier) (account.Identifier, error) {
	if "" == value {
		return defaultAccount, nil
	}
	return lookupAccount(config, value)
}

// optional authority: blank or NONE means no authority
func optionalAuthority(config *configuration.Configuration, value string) (*account.Identifier, error) {
	if "" == value || clearAuthority == strings.ToUpper(value) {
		return nil, nil
	}
	id, err := lookupAccount(config, value)
	if nil != err {
		return nil, err
	}
	return &id, nil
}

// identity names take precedence over Base58 text
func lookupAccount(config *configuration.Configuration, value string) (account.Identifier, error) {
	if nil != config {
		if _, ok := config.Identities[value]; ok {
			return config.Account(value)
		}
	}
	return account.FromBase58(value)
}

// the current identity name, from the global option or the default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the key of one identity
func unlock(c *cli.Context, m *metadata, name string) (*account.PrivateKey, error) {
	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, private.PrivateKey.Account())
	}
	return private.PrivateKey, nil
}

// decrypt the current identity
func currentKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}
	return unlock(c, m, name)
}

// connect to the configured nftd
func newClient(m *metadata) (*rpccalls.Client, error) {
	program, err := m.config.ProgramID()
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(program, m.config.Connect, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
