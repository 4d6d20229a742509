// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/command/nft-cli/configuration"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/fixtures"
)

const password = "correct horse battery staple"

func newConfiguration(t *testing.T) (*configuration.Configuration, string) {
	seed, err := account.NewBase58Seed()
	assert.Nil(t, err, "wrong NewBase58Seed")

	config := &configuration.Configuration{
		DefaultIdentity: "alice",
		Connect:         "127.0.0.1:2130",
		Program:         fixtures.Address(9).String(),
		Identities:      make(map[string]configuration.Identity),
	}
	err = config.AddIdentity("alice", "first identity", seed, password)
	assert.Nil(t, err, "wrong AddIdentity")
	return config, seed
}

func TestAddIdentityAndUnlock(t *testing.T) {
	config, seed := newConfiguration(t)

	key, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "wrong PrivateKeyFromBase58Seed")

	acc, err := config.Account("alice")
	assert.Nil(t, err, "wrong Account")
	assert.Equal(t, key.Account(), acc, "wrong account")

	private, err := config.Private(password, "alice")
	assert.Nil(t, err, "wrong Private")
	assert.Equal(t, seed, private.Seed, "wrong seed")
	assert.Equal(t, key.Account(), private.PrivateKey.Account(), "wrong private key")
	assert.Equal(t, "first identity", private.Description, "wrong description")

	_, err = config.Private("not the password", "alice")
	assert.Equal(t, fault.ErrWrongPassword, err, "wrong password accepted")

	err = config.AddIdentity("alice", "again", seed, password)
	assert.Equal(t, fault.ErrIdentityNameAlreadyExists, err, "duplicate identity accepted")

	_, err = config.Identity("bob")
	assert.Equal(t, fault.ErrIdentityNameNotFound, err, "unknown identity found")

	program, err := config.ProgramID()
	assert.Nil(t, err, "wrong ProgramID")
	assert.Equal(t, fixtures.Address(9), program, "wrong program")
}

func TestAddReceiveOnlyIdentity(t *testing.T) {
	config, _ := newConfiguration(t)

	bob := fixtures.Address(2)
	err := config.AddReceiveOnlyIdentity("bob", "receive only", bob.String())
	assert.Nil(t, err, "wrong AddReceiveOnlyIdentity")

	acc, err := config.Account("bob")
	assert.Nil(t, err, "wrong Account")
	assert.Equal(t, bob, acc, "wrong account")

	_, err = config.Private(password, "bob")
	assert.Equal(t, fault.ErrNotPrivateKey, err, "receive only identity unlocked")

	err = config.AddReceiveOnlyIdentity("carol", "bad", "not-an-account")
	assert.NotNil(t, err, "invalid account accepted")

	assert.Equal(t, []string{"alice", "bob"}, config.Names(), "wrong names")
}

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "nft-cli-configuration")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "nft-cli.json")

	config, seed := newConfiguration(t)
	err = configuration.Save(file, config)
	assert.Nil(t, err, "wrong Save")

	// second save keeps a backup
	err = configuration.Save(file, config)
	assert.Nil(t, err, "wrong second Save")
	_, err = os.Stat(file + ".bk")
	assert.Nil(t, err, "missing backup file")

	loaded, err := configuration.Load(file)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, config, loaded, "configuration changed by save")

	private, err := loaded.Private(password, "alice")
	assert.Nil(t, err, "wrong Private")
	assert.Equal(t, seed, private.Seed, "wrong seed")

	_, err = configuration.Load(filepath.Join(dir, "missing.json"))
	assert.True(t, os.IsNotExist(err), "missing file loaded")
}
