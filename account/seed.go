// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftregistry/fault"
)

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x03}
)

const (
	seedHeaderLength   = 3
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + ed25519.SeedSize + seedChecksumLength
)

// NewBase58Seed - create a random seed in its Base58 text form
func NewBase58Seed() (string, error) {
	secretKey := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(secretKey)
	if nil != err {
		return "", err
	}
	return Base58Seed(secretKey)
}

// Base58Seed - header ++ seed ++ checksum as Base58
func Base58Seed(secretKey []byte) (string, error) {
	if ed25519.SeedSize != len(secretKey) {
		return "", fault.ErrUnsupportedPrivateKeyLength
	}
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, secretKey...)
	digest := sha3.Sum256(seed)
	seed = append(seed, digest[:seedChecksumLength]...)
	return base58.Encode(seed), nil
}

// PrivateKeyFromBase58Seed - this converts a Base58 encoded seed string and returns a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || seedLength != len(seed) {
		return nil, fault.ErrInvalidSeed
	}

	// verify checksum
	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeed
	}

	return PrivateKeyFromSeed(seed[seedHeaderLength:checksumStart])
}
