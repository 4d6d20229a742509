// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/nftregistry/fault"
)

// IdentifierLength - bytes in a public key or derived address
const IdentifierLength = 32

// Identifier - a 32 byte public key naming an account or an authority
type Identifier [IdentifierLength]byte

// the all-zero identifier, used for a cleared authority
var zeroIdentifier Identifier

// FromBase58 - convert a Base58 encoded string to an identifier
func FromBase58(s string) (Identifier, error) {
	id := Identifier{}
	b, err := base58.Decode(s)
	if nil != err {
		return id, fault.ErrCannotDecodeIdentifier
	}
	if IdentifierLength != len(b) {
		return id, fault.ErrInvalidIdentifier
	}
	copy(id[:], b)
	return id, nil
}

// FromBytes - convert a byte slice to an identifier
func FromBytes(b []byte) (Identifier, error) {
	id := Identifier{}
	if IdentifierLength != len(b) {
		return id, fault.ErrInvalidIdentifier
	}
	copy(id[:], b)
	return id, nil
}

// IsZero - true for the cleared identifier
func (id Identifier) IsZero() bool {
	return id == zeroIdentifier
}

// Bytes - copy of the raw key
func (id Identifier) Bytes() []byte {
	b := make([]byte, IdentifierLength)
	copy(b, id[:])
	return b
}

// String - Base58 form for use by the fmt package (for %s)
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// GoString - for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<identifier:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identifier to Base58 text
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert Base58 text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// Compare - byte ordering of two identifiers
func (id Identifier) Compare(other Identifier) int {
	return bytes.Compare(id[:], other[:])
}

// CheckSignature - verify an ed25519 signature made by this identifier
func (id Identifier) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
