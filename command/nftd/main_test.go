// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePidFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftd-pid")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "nftd.pid")
	err = createPidFile(name)
	assert.Nil(t, err, "wrong createPidFile")

	b, err := ioutil.ReadFile(name)
	assert.Nil(t, err, "wrong ReadFile")
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(b), "wrong pid")

	err = createPidFile(name)
	assert.NotNil(t, err, "second instance allowed")
}

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "nftd-cert")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	certificate := filepath.Join(dir, rpcCertificateKeyFilename)
	key := filepath.Join(dir, rpcPrivateKeyFilename)

	err = makeSelfSignedCertificate("rpc", certificate, key, true, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong makeSelfSignedCertificate")

	info, err := os.Stat(key)
	assert.Nil(t, err, "missing key")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong key mode")

	err = makeSelfSignedCertificate("rpc", certificate, key, true, nil)
	assert.NotNil(t, err, "existing certificate overwritten")
}
