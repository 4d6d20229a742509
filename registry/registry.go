// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the ledger of collection and asset records
//
// Submit verifies a signed instruction, loads the records it names,
// runs the processor and commits every replaced buffer together with
// the owner index in one batch.  Writers are serialised; queries only
// run between writes.
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/processor"
	"github.com/bitmark-inc/nftregistry/storage"
)

// Handles - storage pools used by the registry
type Handles struct {
	Collections storage.Handle
	Assets      storage.Handle
	OwnerIndex  storage.Handle
	OwnerCount  storage.Handle
}

// TransactionFunc - start a storage transaction
type TransactionFunc func() (storage.Transaction, error)

// Registry - serialised access to the ledger
type Registry struct {
	sync.RWMutex

	log            *logger.L
	program        account.Identifier
	pools          Handles
	newTransaction TransactionFunc
}

// Receipt - summary of an applied instruction
type Receipt struct {
	Instruction string               `json:"instruction"`
	Signers     []account.Identifier `json:"signers"`
	Collection  *account.Identifier  `json:"collection,omitempty"`
	Asset       *account.Identifier  `json:"asset,omitempty"`
	Closed      bool                 `json:"closed,omitempty"`
}

// New - create a registry for one program identity
func New(log *logger.L, program account.Identifier, pools Handles, newTransaction TransactionFunc) *Registry {
	return &Registry{
		log:            log,
		program:        program,
		pools:          pools,
		newTransaction: newTransaction,
	}
}

// Program - the identity this registry accepts instructions for
func (r *Registry) Program() account.Identifier {
	return r.program
}

// Submit - apply one packed signed instruction
func (r *Registry) Submit(packed instruction.Packed) (*Receipt, error) {
	signed, err := packed.UnpackSigned()
	if nil != err {
		return nil, err
	}
	if signed.Program != r.program {
		return nil, fault.ErrWrongProgram
	}

	signers, err := signed.Verify()
	if nil != err {
		return nil, err
	}

	r.Lock()
	defer r.Unlock()

	trx, err := r.newTransaction()
	if nil != err {
		return nil, err
	}

	receipt, err := r.apply(trx, signed.Instruction, signers)
	if nil != err {
		trx.Abort()
		r.log.Debugf("rejected: %s  error: %s", name(signed.Instruction), err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("commit: %s  error: %s", receipt.Instruction, err)
		return nil, err
	}

	r.log.Infof("applied: %s  collection: %v  asset: %v", receipt.Instruction, receipt.Collection, receipt.Asset)
	return receipt, nil
}

// load, process and queue the writes
func (r *Registry) apply(trx storage.Transaction, t instruction.Instruction, signers account.SignerSet) (*Receipt, error) {
	accounts, previous, err := r.load(trx, t)
	if nil != err {
		return nil, err
	}

	result, err := processor.Apply(t, accounts, signers)
	if nil != err {
		return nil, err
	}

	receipt := &Receipt{
		Instruction: name(t),
		Signers:     signers,
		Closed:      result.Closed,
	}

	if nil != result.Collection {
		address := accounts.Collection.Address
		trx.Put(r.pools.Collections, address.Bytes(), result.Collection)
		receipt.Collection = &address
	}

	if nil != result.Asset {
		address := accounts.Asset.Address
		if result.Closed {
			trx.Delete(r.pools.Assets, address.Bytes())
		} else {
			trx.Put(r.pools.Assets, address.Bytes(), result.Asset)
		}
		err := r.reindex(trx, address, previous, result)
		if nil != err {
			return nil, err
		}
		receipt.Asset = &address
	}

	return receipt, nil
}

func name(t instruction.Instruction) string {
	switch tx := t.(type) {
	case *instruction.CreateCollection:
		return "create-collection"
	case *instruction.Mint:
		return "mint"
	case *instruction.Transfer:
		return "transfer"
	case *instruction.Freeze:
		return "freeze"
	case *instruction.Thaw:
		return "thaw"
	case *instruction.Burn:
		return "burn"
	case *instruction.Authorise:
		return "authorize-" + tx.Kind.String()
	case *instruction.Update:
		return "update-" + tx.Kind.String()
	default:
		return "unknown"
	}
}
