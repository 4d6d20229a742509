// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/command/nft-cli/configuration"
	"github.com/bitmark-inc/nftregistry/fault"
)

// create the configuration file with its first identity
func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}
	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}
	program, err := checkProgram(c.String("program"))
	if nil != err {
		return err
	}
	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s  program: %s\n", connect, program)
		fmt.Fprintf(m.e, "identity: %s  description: %s\n", name, description)
	}

	configDir := path.Dir(m.file)
	if isDir, err := checkFileExists(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0750); nil != err {
			return err
		}
	} else if nil != err {
		return err
	} else if !isDir {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	m.config = &configuration.Configuration{
		DefaultIdentity: name,
		Connect:         connect,
		Program:         program,
		Identities:      make(map[string]configuration.Identity),
	}

	return addSigningIdentity(c, m, name, description)
}

// add one more identity, either signing or receive only
func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}
	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	acc := c.String("account")
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  description: %s\n", name, description)
	}

	switch {
	case "" == acc:
		return addSigningIdentity(c, m, name, description)

	case "" == c.String("seed") && !c.Bool("new"):
		if err := m.config.AddReceiveOnlyIdentity(name, description, acc); nil != err {
			return err
		}
		m.save = true
		return nil

	default:
		return fault.ErrIncompatibleOptions
	}
}

// encrypt a new or given seed under a password and mark the file for saving
func addSigningIdentity(c *cli.Context, m *metadata, name string, description string) error {
	seed, err := checkSeed(c.String("seed"), c.Bool("new"))
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	if err := m.config.AddIdentity(name, description, seed, password); nil != err {
		return err
	}

	m.save = true
	return nil
}
