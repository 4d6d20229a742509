// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/rpc/ledger"
)

// Submit - sign an instruction with every key and send it to the registry
func (client *Client) Submit(t instruction.Instruction, keys ...*account.PrivateKey) (*ledger.SubmitReply, error) {

	signed, err := instruction.Sign(client.program, t, keys...)
	if nil != err {
		return nil, err
	}

	client.trace("Signed Instruction", signed)

	packed, err := signed.Pack()
	if nil != err {
		return nil, err
	}

	arguments := ledger.SubmitArguments{
		Instruction: packed,
	}

	client.trace("Submit Request", arguments)

	reply := &ledger.SubmitReply{}
	err = client.client.Call("Registry.Submit", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.trace("Submit Reply", reply)

	return reply, nil
}
