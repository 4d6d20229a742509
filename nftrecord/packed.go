// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftrecord

import (
	"encoding/hex"
)

// Packed - a record as stored in a ledger buffer
type Packed []byte

// String - hex form for use by the fmt package (for %s)
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - hex form for JSON
func (record Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - hex form from JSON
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*record = b[:n]
	return nil
}

// Empty - an uninitialised buffer of n bytes
func Empty(n int) Packed {
	return make(Packed, n)
}
