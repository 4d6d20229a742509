// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/nftrecord"
)

// Operation - an action that changes an asset's state
type Operation int

// operations on assets
const (
	Mint               Operation = iota
	Transfer           Operation = iota
	Freeze             Operation = iota
	Thaw               Operation = iota
	Burn               Operation = iota
	CloseAuthorisation Operation = iota
	AssetURIUpdate     Operation = iota
)

type transition struct {
	from    nftrecord.State
	to      nftrecord.State
	destroy bool
}

// the only permitted asset transitions
var assetTransitions = map[Operation]transition{
	Mint:               {from: nftrecord.Uninitialised, to: nftrecord.Initialised},
	Transfer:           {from: nftrecord.Initialised, to: nftrecord.Initialised},
	Freeze:             {from: nftrecord.Initialised, to: nftrecord.Frozen},
	Thaw:               {from: nftrecord.Frozen, to: nftrecord.Initialised},
	Burn:               {from: nftrecord.Initialised, to: nftrecord.Uninitialised, destroy: true},
	CloseAuthorisation: {from: nftrecord.Initialised, to: nftrecord.Initialised},
	AssetURIUpdate:     {from: nftrecord.Initialised, to: nftrecord.Initialised},
}

// Next - state after op is applied in state from
//
// destroy is true when the record is removed
func Next(op Operation, from nftrecord.State) (to nftrecord.State, destroy bool, err error) {
	t, ok := assetTransitions[op]
	if !ok {
		return from, false, fault.ErrIllegalTransition
	}
	if from == t.from {
		return t.to, t.destroy, nil
	}

	switch {
	case Mint == op:
		return from, false, fault.ErrRecordAlreadyInitialised
	case nftrecord.Uninitialised == from:
		return from, false, fault.ErrAssetNotInitialised
	case nftrecord.Frozen == from:
		return from, false, fault.ErrAssetFrozen
	case Thaw == op:
		return from, false, fault.ErrAssetNotFrozen
	default:
		return from, false, fault.ErrIllegalTransition
	}
}
