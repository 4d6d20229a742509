// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftregistry/fixtures"
	"github.com/bitmark-inc/nftregistry/rpc/certificate"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.TLSPair()

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetBadPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "accepted garbage")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	cer, key := fixtures.TLSPair()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(certificateFile, []byte(cer), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(keyFile, []byte(key), 0600), "write key")

	log := logger.New(fixtures.LogCategory)
	_, expected, err := certificate.Get(log, "test", cer, key)
	require.Nil(t, err, "get")

	_, fingerprint, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "load")
	assert.Equal(t, expected, fingerprint, "fingerprint")

	_, _, err = certificate.Load(log, "test", filepath.Join(dir, "absent.crt"), keyFile)
	assert.NotNil(t, err, "missing certificate")
}
