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

// carries a decode failure out of a reader panic
type decodeError struct {
	err error
}

// reader - sequential field access, panics on truncation
type reader struct {
	buffer Packed
	n      int
}

func (r *reader) identifier() account.Identifier {
	id := account.Identifier{}
	copy(id[:], r.buffer[r.n:r.n+account.IdentifierLength])
	r.n += account.IdentifierLength
	return id
}

func (r *reader) optional() *account.Identifier {
	tag := r.buffer[r.n]
	r.n += 1
	switch tag {
	case absent:
		return nil
	case present:
		id := r.identifier()
		return &id
	default:
		panic(decodeError{fault.ErrInvalidOptionTag})
	}
}

func (r *reader) uint64() uint64 {
	value, count := binary.Uvarint(r.buffer[r.n:])
	if count <= 0 {
		panic(decodeError{fault.ErrNotInstructionPack})
	}
	r.n += count
	return value
}

func (r *reader) bytes(maximum int) []byte {
	length := r.uint64()
	if length > uint64(maximum) {
		panic(decodeError{fault.ErrStringTooLong})
	}
	l := int(length)
	b := make([]byte, l)
	copy(b, r.buffer[r.n:r.n+l])
	r.n += l
	return b
}

func (r *reader) string() string {
	return string(r.bytes(maxStringLength))
}

// Unpack - turn a byte slice into an instruction
//
// returns the program it is addressed to and the number of bytes used
//
// must cast result to correct type
//
// e.g.
//
//	switch tx := result.(type) {
//	case *instruction.Transfer:
func (record Packed) Unpack() (program account.Identifier, t Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.ErrNotInstructionPack
			if d, ok := r.(decodeError); ok {
				e = d.err
			}
			t = nil
			n = 0
		}
	}()

	r := &reader{buffer: record[:len(record):len(record)]}
	program = r.identifier()

	switch TagType(r.uint64()) {

	case CreateCollectionTag:
		t = &CreateCollection{
			Collection:      r.identifier(),
			MintAuthority:   r.identifier(),
			FreezeAuthority: r.optional(),
			Name:            r.string(),
			Symbol:          r.string(),
			IconURI:         r.string(),
			TotalSupply:     r.uint64(),
		}

	case MintTag:
		t = &Mint{
			Collection:     r.identifier(),
			Asset:          r.identifier(),
			Author:         r.identifier(),
			Proposal:       r.identifier(),
			Owner:          r.identifier(),
			CloseAuthority: r.optional(),
			AssetURI:       r.string(),
			Timestamp:      r.uint64(),
		}

	case TransferTag:
		t = &Transfer{
			Asset: r.identifier(),
			From:  r.identifier(),
			To:    r.identifier(),
		}

	case FreezeTag:
		t = &Freeze{Asset: r.identifier()}

	case ThawTag:
		t = &Thaw{Asset: r.identifier()}

	case BurnTag:
		t = &Burn{Asset: r.identifier()}

	case AuthoriseTag:
		a := &Authorise{
			Target: r.identifier(),
			Kind:   AuthorityKind(r.uint64()),
		}
		if !a.Kind.Valid() {
			return program, nil, 0, fault.ErrInvalidAuthorityKind
		}
		a.NewAuthority = r.optional()
		t = a

	case UpdateTag:
		u := &Update{
			Target: r.identifier(),
			Kind:   UpdateKind(r.uint64()),
		}
		if !u.Kind.Valid() {
			return program, nil, 0, fault.ErrInvalidUpdateKind
		}
		u.Value = r.string()
		t = u

	default:
		return program, nil, 0, fault.ErrUnknownInstruction
	}

	return program, t, r.n, nil
}
