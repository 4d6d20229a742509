// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the Registry RPC service
package ledger

//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/instruction"
	"github.com/bitmark-inc/nftregistry/nftrecord"
	"github.com/bitmark-inc/nftregistry/registry"
	"github.com/bitmark-inc/nftregistry/rpc/ratelimit"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100

	maximumSubmitLength = 8192
)

// Ledger - the registry operations offered over RPC
type Ledger interface {
	Submit(instruction.Packed) (*registry.Receipt, error)
	Collection(account.Identifier) (*nftrecord.MintRecord, error)
	Asset(account.Identifier) (*registry.AssetInfo, error)
	Owned(account.Identifier, *account.Identifier, int) (*registry.Owned, error)
}

// Registry - type for the RPC
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the RPC service
func New(log *logger.L, ledger Ledger) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Ledger:  ledger,
	}
}

// ---

// SubmitArguments - a hex encoded signed instruction
type SubmitArguments struct {
	Instruction instruction.Packed `json:"instruction"`
}

// SubmitReply - result of applying the instruction
type SubmitReply struct {
	Receipt *registry.Receipt `json:"receipt"`
}

// Submit - apply a signed instruction to the ledger
func (r *Registry) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Instruction) {
		return fault.ErrMissingParameters
	}
	if len(arguments.Instruction) > maximumSubmitLength {
		return fault.ErrStringTooLong
	}

	r.Log.Infof("Registry.Submit: %d bytes", len(arguments.Instruction))

	receipt, err := r.Ledger.Submit(arguments.Instruction)
	if nil != err {
		r.Log.Debugf("Registry.Submit: error: %s", err)
		return err
	}
	reply.Receipt = receipt
	return nil
}

// ---

// AddressArguments - a single record address
type AddressArguments struct {
	Address account.Identifier `json:"address"`
}

// CollectionReply - a decoded collection record
type CollectionReply struct {
	Address account.Identifier    `json:"address"`
	Record  *nftrecord.MintRecord `json:"record"`
}

// Collection - fetch a collection record
func (r *Registry) Collection(arguments *AddressArguments, reply *CollectionReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Collection: %s", arguments.Address)

	record, err := r.Ledger.Collection(arguments.Address)
	if nil != err {
		return err
	}
	reply.Address = arguments.Address
	reply.Record = record
	return nil
}

// AssetReply - a decoded asset record
type AssetReply struct {
	Asset *registry.AssetInfo `json:"asset"`
}

// Asset - fetch an asset record with its collection names
func (r *Registry) Asset(arguments *AddressArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Asset: %s", arguments.Address)

	info, err := r.Ledger.Asset(arguments.Address)
	if nil != err {
		return err
	}
	reply.Asset = info
	return nil
}

// ---

// OwnedArguments - page through the assets of an owner
type OwnedArguments struct {
	Owner account.Identifier  `json:"owner"`
	Start *account.Identifier `json:"start,omitempty"`
	Count int                 `json:"count"`
}

// OwnedReply - one page of owned assets
type OwnedReply struct {
	Owned *registry.Owned `json:"owned"`
}

// Owned - list assets held by an owner
func (r *Registry) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, registry.MaximumOwnedCount); nil != err {
		return err
	}

	if arguments.Owner.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Owned: %s  count: %d", arguments.Owner, arguments.Count)

	owned, err := r.Ledger.Owned(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Owned = owned
	return nil
}
