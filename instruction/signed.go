// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
)

// SignerSignature - one signature over the instruction message
type SignerSignature struct {
	Signer    account.Identifier `json:"signer"`
	Signature account.Signature  `json:"signature"`
}

// Signed - an instruction message with all of its signatures
//
// packed as: message ++ varint(count) ++ count × (signer ++ varint(len) ++ signature)
type Signed struct {
	Program     account.Identifier `json:"program"`
	Instruction Instruction        `json:"instruction"`
	Message     Packed             `json:"-"`
	Signatures  []SignerSignature  `json:"signatures"`
}

// Sign - pack an instruction and sign it with each key
func Sign(program account.Identifier, t Instruction, keys ...*account.PrivateKey) (*Signed, error) {
	if len(keys) > maxSigners {
		return nil, fault.ErrTooManySigners
	}
	message, err := t.Pack(program)
	if nil != err {
		return nil, err
	}
	signed := &Signed{
		Program:     program,
		Instruction: t,
		Message:     message,
		Signatures:  make([]SignerSignature, 0, len(keys)),
	}
	for _, key := range keys {
		signed.Signatures = append(signed.Signatures, SignerSignature{
			Signer:    key.Account(),
			Signature: key.Sign(message),
		})
	}
	return signed, nil
}

// Pack - message followed by the signatures
func (signed *Signed) Pack() (Packed, error) {
	if len(signed.Signatures) > maxSigners {
		return nil, fault.ErrTooManySigners
	}
	buffer := make(Packed, 0, len(signed.Message)+len(signed.Signatures)*100)
	buffer = append(buffer, signed.Message...)
	buffer = appendUint64(buffer, uint64(len(signed.Signatures)))
	for _, s := range signed.Signatures {
		if len(s.Signature) > maxSignatureLength {
			return nil, fault.ErrSignatureTooLong
		}
		buffer = appendIdentifier(buffer, s.Signer)
		buffer = appendBytes(buffer, s.Signature)
	}
	return buffer, nil
}

// UnpackSigned - decode an instruction and its signatures
//
// the whole buffer must be consumed
func (record Packed) UnpackSigned() (signed *Signed, e error) {

	program, t, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}

	defer func() {
		if r := recover(); nil != r {
			signed = nil
			e = fault.ErrNotInstructionPack
			if d, ok := r.(decodeError); ok {
				e = d.err
			}
		}
	}()

	r := &reader{buffer: record[:len(record):len(record)], n: n}
	count := r.uint64()
	if count > maxSigners {
		return nil, fault.ErrTooManySigners
	}

	signed = &Signed{
		Program:     program,
		Instruction: t,
		Message:     record[:n:n],
		Signatures:  make([]SignerSignature, 0, count),
	}
	for i := uint64(0); i < count; i += 1 {
		signer := r.identifier()
		signature := r.bytes(maxSignatureLength)
		signed.Signatures = append(signed.Signatures, SignerSignature{
			Signer:    signer,
			Signature: signature,
		})
	}
	if len(record) != r.n {
		return nil, fault.ErrNotInstructionPack
	}
	return signed, nil
}

// Verify - check every signature over the message
//
// any bad signature rejects the whole instruction, the result lists
// the signers in their original order
func (signed *Signed) Verify() (account.SignerSet, error) {
	if 0 == len(signed.Signatures) {
		return nil, fault.ErrMissingParameters
	}
	ids := make([]account.Identifier, 0, len(signed.Signatures))
	for _, s := range signed.Signatures {
		err := s.Signer.CheckSignature(signed.Message, s.Signature)
		if nil != err {
			return nil, err
		}
		ids = append(ids, s.Signer)
	}
	return account.NewSignerSet(ids...), nil
}
