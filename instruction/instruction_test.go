// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
)

var program = account.Identifier{0xee, 0x01}

func key(t *testing.T, b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32))
	require.Nil(t, err, "private key")
	return k
}

func allInstructions() []instruction.Instruction {
	freeze := account.Identifier{0x05}
	return []instruction.Instruction{
		&instruction.CreateCollection{
			Collection:      account.Identifier{0x01},
			MintAuthority:   account.Identifier{0x02},
			FreezeAuthority: &freeze,
			Name:            "name",
			Symbol:          "SYM",
			IconURI:         "https://icon",
			TotalSupply:     1000,
		},
		&instruction.CreateCollection{
			Collection:    account.Identifier{0x01},
			MintAuthority: account.Identifier{0x02},
			TotalSupply:   1,
		},
		&instruction.Mint{
			Collection: account.Identifier{0x01},
			Asset:      account.Identifier{0x06},
			Author:     account.Identifier{0x07},
			Proposal:   account.Identifier{0x08},
			Owner:      account.Identifier{0x09},
			AssetURI:   "ipfs://x",
			Timestamp:  1600000000,
		},
		&instruction.Transfer{
			Asset: account.Identifier{0x06},
			From:  account.Identifier{0x09},
			To:    account.Identifier{0x0a},
		},
		&instruction.Freeze{Asset: account.Identifier{0x06}},
		&instruction.Thaw{Asset: account.Identifier{0x06}},
		&instruction.Burn{Asset: account.Identifier{0x06}},
		&instruction.Authorise{
			Target:       account.Identifier{0x01},
			Kind:         instruction.FreezeAuthority,
			NewAuthority: nil,
		},
		&instruction.Authorise{
			Target:       account.Identifier{0x06},
			Kind:         instruction.CloseAuthority,
			NewAuthority: &freeze,
		},
		&instruction.Update{
			Target: account.Identifier{0x01},
			Kind:   instruction.IconURI,
			Value:  "https://new-icon",
		},
	}
}

func TestPackUnpack(t *testing.T) {
	for i, item := range allInstructions() {
		packed, err := item.Pack(program)
		require.Nil(t, err, "%d: pack error", i)

		p, back, n, err := packed.Unpack()
		require.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, program, p, "%d: wrong program", i)
		assert.Equal(t, len(packed), n, "%d: wrong length", i)
		assert.Equal(t, item, back, "%d: instruction changed", i)
	}
}

func TestTruncated(t *testing.T) {
	for i, item := range allInstructions() {
		packed, err := item.Pack(program)
		require.Nil(t, err, "%d: pack error", i)

		for l := 0; l < len(packed); l += 1 {
			_, back, n, err := packed[:l].Unpack()
			assert.NotNil(t, err, "%d: truncated at %d accepted", i, l)
			assert.Nil(t, back, "%d: partial result at %d", i, l)
			assert.Equal(t, 0, n, "%d: length at %d", i, l)
		}
	}
}

func TestUnknownTag(t *testing.T) {
	for _, tag := range []byte{0, 9, 0x7f} {
		packed := append(program.Bytes(), tag)
		_, _, _, err := instruction.Packed(packed).Unpack()
		assert.Equal(t, fault.ErrUnknownInstruction, err, "tag %d accepted", tag)
	}
}

func TestBadFields(t *testing.T) {
	create := &instruction.CreateCollection{TotalSupply: 1}
	packed, err := create.Pack(program)
	require.Nil(t, err, "pack error")

	// optional presence byte follows program, tag and two identifiers
	packed[32+1+32+32] = 7
	_, _, _, err = packed.Unpack()
	assert.Equal(t, fault.ErrInvalidOptionTag, err, "bad presence byte")

	a := &instruction.Authorise{Kind: 9}
	_, err = a.Pack(program)
	assert.Equal(t, fault.ErrInvalidAuthorityKind, err, "bad authority kind packed")

	u := &instruction.Update{Kind: 0}
	_, err = u.Pack(program)
	assert.Equal(t, fault.ErrInvalidUpdateKind, err, "bad update kind packed")

	long := &instruction.Update{Kind: instruction.AssetURI, Value: string(make([]byte, 2000))}
	_, err = long.Pack(program)
	assert.Equal(t, fault.ErrStringTooLong, err, "long string packed")
}

func TestKinds(t *testing.T) {
	k, err := instruction.AuthorityKindFromString("Freeze")
	assert.Nil(t, err, "freeze kind")
	assert.Equal(t, instruction.FreezeAuthority, k, "freeze kind value")

	_, err = instruction.AuthorityKindFromString("owner")
	assert.Equal(t, fault.ErrInvalidAuthorityKind, err, "owner kind")

	u, err := instruction.UpdateKindFromString("asset")
	assert.Nil(t, err, "asset kind")
	assert.Equal(t, instruction.AssetURI, u, "asset kind value")
	assert.Equal(t, "icon", instruction.IconURI.String(), "icon name")

	_, err = instruction.UpdateKindFromString("name")
	assert.Equal(t, fault.ErrInvalidUpdateKind, err, "name kind")
}

func TestSigned(t *testing.T) {
	k1 := key(t, 1)
	k2 := key(t, 2)

	transfer := &instruction.Transfer{Asset: account.Identifier{1}, From: k1.Account(), To: k2.Account()}
	signed, err := instruction.Sign(program, transfer, k1, k2)
	require.Nil(t, err, "sign error")

	packed, err := signed.Pack()
	require.Nil(t, err, "pack error")

	back, err := packed.UnpackSigned()
	require.Nil(t, err, "unpack error")
	assert.Equal(t, program, back.Program, "program")
	assert.Equal(t, transfer, back.Instruction, "instruction")
	assert.Equal(t, signed.Message, back.Message, "message")
	assert.Equal(t, signed.Signatures, back.Signatures, "signatures")

	signers, err := back.Verify()
	require.Nil(t, err, "verify error")
	assert.Equal(t, account.SignerSet{k1.Account(), k2.Account()}, signers, "signers")

	// trailing garbage
	_, err = append(packed, 0).UnpackSigned()
	assert.Equal(t, fault.ErrNotInstructionPack, err, "trailing byte accepted")

	// truncated signature block
	_, err = packed[:len(packed)-1].UnpackSigned()
	assert.NotNil(t, err, "truncated signature accepted")
}

func TestSignedTampered(t *testing.T) {
	k1 := key(t, 1)
	k2 := key(t, 2)

	signed, err := instruction.Sign(program, &instruction.Burn{Asset: account.Identifier{3}}, k1)
	require.Nil(t, err, "sign error")

	// claim a different signer
	signed.Signatures[0].Signer = k2.Account()
	_, err = signed.Verify()
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong signer accepted")

	// no signatures
	signed.Signatures = nil
	_, err = signed.Verify()
	assert.Equal(t, fault.ErrMissingParameters, err, "unsigned accepted")
}
