// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftregistry/fixtures"
)

func writeConfiguration(t *testing.T, body string) (string, string) {
	dir, err := ioutil.TempDir("", "nftd-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "nftd.conf")
	if err := ioutil.WriteFile(name, []byte(body), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, name
}

func TestGetConfiguration(t *testing.T) {
	program := fixtures.Address(7)

	dir, name := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.program_id = "`+program.String()+`"
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
M.logging = {
    levels = { DEFAULT = "info" },
}
return M
`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name)
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, program, options.program, "wrong program")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "data", "nftregistry.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")

	for _, d := range []string{"data", "log"} {
		info, err := os.Stat(filepath.Join(dir, d))
		assert.Nil(t, err, "missing directory: %s", d)
		assert.True(t, info.IsDir(), "not a directory: %s", d)
	}
}

func TestGetConfigurationMissingProgram(t *testing.T) {
	dir, name := writeConfiguration(t, `
return { data_directory = "." }
`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "missing program_id accepted")
}

func TestGetConfigurationInvalidProgram(t *testing.T) {
	dir, name := writeConfiguration(t, `
return { data_directory = ".", program_id = "not-base58-0OIl" }
`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "invalid program_id accepted")
}

func TestGetConfigurationDatabaseNameIsPlain(t *testing.T) {
	dir, name := writeConfiguration(t, `
return {
    data_directory = ".",
    program_id = "`+fixtures.Address(1).String()+`",
    database = { directory = "data", name = "sub/registry.leveldb" },
}
`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "path database name accepted")
}

func TestGetConfigurationBlankDataDirectory(t *testing.T) {
	dir, name := writeConfiguration(t, `
return { program_id = "`+fixtures.Address(1).String()+`" }
`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "blank data directory accepted")
}
