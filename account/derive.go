// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

const derivationTag = "nftregistry:asset"

// DeriveAddress - deterministic address of the asset minted into a
// collection with a given index
//
// the hash is over: index(LE) ++ program ++ collection ++ tag
func DeriveAddress(program Identifier, collection Identifier, index uint64) Identifier {
	var indexBytes [8]byte
	binary.LittleEndian.PutUint64(indexBytes[:], index)

	h := sha3.New256()
	h.Write(indexBytes[:])
	h.Write(program[:])
	h.Write(collection[:])
	h.Write([]byte(derivationTag))

	id := Identifier{}
	copy(id[:], h.Sum(nil))
	return id
}
