// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/nftregistry/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// PrivateKeyFromSeed - expand a 32 byte ed25519 seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrUnsupportedPrivateKeyLength
	}
	return &PrivateKey{
		key: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromHex - full 64 byte private key or 32 byte seed as hex
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	switch len(b) {
	case ed25519.SeedSize:
		return PrivateKeyFromSeed(b)
	case ed25519.PrivateKeySize:
		return PrivateKeyFromSeed(b[:ed25519.SeedSize])
	default:
		return nil, fault.ErrUnsupportedPrivateKeyLength
	}
}

// Account - the public identifier for this key
func (privateKey *PrivateKey) Account() Identifier {
	id := Identifier{}
	copy(id[:], privateKey.key.Public().(ed25519.PublicKey))
	return id
}

// Sign - ed25519 signature over message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.key, message))
}

// Seed - the 32 byte seed that regenerates this key
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.key.Seed()
}

// String - hex form of the full private key
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.key)
}

// MarshalText - hex form of the full private key
func (privateKey *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
