// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for tests
package fixtures

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftregistry/account"
)

const (
	testingDirName = "testing"

	// LogCategory - logger channel used by tests
	LogCategory = "testing"
)

// SetupTestLogger - send all logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// Key - a deterministic private key, distinct for each n
func Key(n byte) *account.PrivateKey {
	seed := bytes.Repeat([]byte{n}, 32)
	key, err := account.PrivateKeyFromSeed(seed)
	logger.PanicIfError("fixtures.Key", err)
	return key
}

// Address - a deterministic record address, distinct for each n
func Address(n byte) account.Identifier {
	var id account.Identifier
	id[0] = 0xad
	id[31] = n
	return id
}

// Program - the program identity used by tests
var Program = account.Identifier{
	0x4e, 0x46, 0x54, 0x72, 0x65, 0x67, 0x69, 0x73,
	0x74, 0x72, 0x79, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
}

var tlsPair struct {
	sync.Once
	certificate string
	key         string
}

// TLSPair - a self signed certificate and key in PEM form
//
// generated once per test binary
func TLSPair() (certificate string, key string) {
	tlsPair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, k, err := certgen.NewTLSCertPair("nftregistry test certificate", validUntil, false, nil)
		logger.PanicIfError("fixtures.TLSPair", err)
		tlsPair.certificate = string(cert)
		tlsPair.key = string(k)
	})
	return tlsPair.certificate, tlsPair.key
}
