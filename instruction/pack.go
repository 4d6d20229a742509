// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
)

// presence byte for optional identifiers
const (
	absent  = 0
	present = 1
)

// start every instruction with the program it is addressed to
func header(program account.Identifier, tag TagType) Packed {
	buffer := make(Packed, 0, 256)
	buffer = append(buffer, program[:]...)
	return appendUint64(buffer, uint64(tag))
}

// Pack - CreateCollection
func (create *CreateCollection) Pack(program account.Identifier) (Packed, error) {
	if err := checkStrings(create.Name, create.Symbol, create.IconURI); nil != err {
		return nil, err
	}
	message := header(program, CreateCollectionTag)
	message = appendIdentifier(message, create.Collection)
	message = appendIdentifier(message, create.MintAuthority)
	message = appendOptional(message, create.FreezeAuthority)
	message = appendString(message, create.Name)
	message = appendString(message, create.Symbol)
	message = appendString(message, create.IconURI)
	message = appendUint64(message, create.TotalSupply)
	return message, nil
}

// Pack - Mint
func (mint *Mint) Pack(program account.Identifier) (Packed, error) {
	if err := checkStrings(mint.AssetURI); nil != err {
		return nil, err
	}
	message := header(program, MintTag)
	message = appendIdentifier(message, mint.Collection)
	message = appendIdentifier(message, mint.Asset)
	message = appendIdentifier(message, mint.Author)
	message = appendIdentifier(message, mint.Proposal)
	message = appendIdentifier(message, mint.Owner)
	message = appendOptional(message, mint.CloseAuthority)
	message = appendString(message, mint.AssetURI)
	message = appendUint64(message, mint.Timestamp)
	return message, nil
}

// Pack - Transfer
func (transfer *Transfer) Pack(program account.Identifier) (Packed, error) {
	message := header(program, TransferTag)
	message = appendIdentifier(message, transfer.Asset)
	message = appendIdentifier(message, transfer.From)
	message = appendIdentifier(message, transfer.To)
	return message, nil
}

// Pack - Freeze
func (freeze *Freeze) Pack(program account.Identifier) (Packed, error) {
	return appendIdentifier(header(program, FreezeTag), freeze.Asset), nil
}

// Pack - Thaw
func (thaw *Thaw) Pack(program account.Identifier) (Packed, error) {
	return appendIdentifier(header(program, ThawTag), thaw.Asset), nil
}

// Pack - Burn
func (burn *Burn) Pack(program account.Identifier) (Packed, error) {
	return appendIdentifier(header(program, BurnTag), burn.Asset), nil
}

// Pack - Authorise
func (authorise *Authorise) Pack(program account.Identifier) (Packed, error) {
	if !authorise.Kind.Valid() {
		return nil, fault.ErrInvalidAuthorityKind
	}
	message := header(program, AuthoriseTag)
	message = appendIdentifier(message, authorise.Target)
	message = appendUint64(message, uint64(authorise.Kind))
	message = appendOptional(message, authorise.NewAuthority)
	return message, nil
}

// Pack - Update
func (update *Update) Pack(program account.Identifier) (Packed, error) {
	if !update.Kind.Valid() {
		return nil, fault.ErrInvalidUpdateKind
	}
	if err := checkStrings(update.Value); nil != err {
		return nil, err
	}
	message := header(program, UpdateTag)
	message = appendIdentifier(message, update.Target)
	message = appendUint64(message, uint64(update.Kind))
	message = appendString(message, update.Value)
	return message, nil
}

func checkStrings(strings ...string) error {
	for _, s := range strings {
		if len(s) > maxStringLength {
			return fault.ErrStringTooLong
		}
	}
	return nil
}

// append a single field to a buffer
//
// the field is prefixed by varint(length)
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append bytes to a buffer
//
// the field is prefixed by varint(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = appendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a fixed 32 byte identifier
func appendIdentifier(buffer Packed, id account.Identifier) Packed {
	return append(buffer, id[:]...)
}

// append presence byte and, if present, the identifier
func appendOptional(buffer Packed, id *account.Identifier) Packed {
	if nil == id {
		return append(buffer, absent)
	}
	buffer = append(buffer, present)
	return append(buffer, id[:]...)
}

// append a varint to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], value)
	return append(buffer, b[:n]...)
}
