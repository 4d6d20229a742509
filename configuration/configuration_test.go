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
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftregistry/configuration"
	"github.com/bitmark-inc/nftregistry/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	ProgramID     string            `gluamapper:"program_id"`
	Listen        []string          `gluamapper:"listen"`
	Connections   int               `gluamapper:"maximum_connections"`
	Database      databaseType      `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
}

const source = `
local M = {}
M.data_directory = "."
M.program_id = "program"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.maximum_connections = 5
M.database = { directory = "data", name = "nft.leveldb" }
M.levels = { DEFAULT = "info", registry = "debug" }
return M
`

func TestParseString(t *testing.T) {
	config := &testConfiguration{
		Connections: 10,
	}
	err := configuration.ParseConfigurationString(source, config)
	require.Nil(t, err, "parse")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, "program", config.ProgramID, "program")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.Listen, "listen")
	assert.Equal(t, 5, config.Connections, "connections")
	assert.Equal(t, databaseType{Directory: "data", Name: "nft.leveldb"}, config.Database, "database")
	assert.Equal(t, "debug", config.Levels["registry"], "levels")
}

func TestParseDefaultsSurvive(t *testing.T) {
	config := &testConfiguration{
		Connections: 10,
		Database:    databaseType{Directory: "data", Name: "default.leveldb"},
	}
	err := configuration.ParseConfigurationString(`return { program_id = "p" }`, config)
	require.Nil(t, err, "parse")

	assert.Equal(t, 10, config.Connections, "connections default")
	assert.Equal(t, "default.leveldb", config.Database.Name, "database default")
}

func TestParseNotTable(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString(`return "text"`, config)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "string result")

	err = configuration.ParseConfigurationString(`return {`, config)
	assert.NotNil(t, err, "syntax error")
}

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "nftd.conf")
	err = ioutil.WriteFile(fileName, []byte(`return { data_directory = arg[0] }`), 0600)
	require.Nil(t, err, "write")

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	require.Nil(t, err, "parse")
	assert.Equal(t, fileName, config.DataDirectory, "arg[0]")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "absent.conf"), config)
	assert.NotNil(t, err, "missing file")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "./x/../log"), "cleaned")
	assert.False(t, configuration.EnsureFileExists("/nonexistent/file"), "missing file exists")
}
