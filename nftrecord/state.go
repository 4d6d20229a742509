// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftrecord

import (
	"github.com/bitmark-inc/nftregistry/fault"
)

// State - lifecycle of an asset record
type State byte

// possible states, the byte value is stored in the record
const (
	Uninitialised State = iota
	Initialised   State = iota
	Frozen        State = iota
	// end of list (one greater than last item)
	stateLimit = iota
)

var stateNames = [stateLimit]string{
	Uninitialised: "uninitialised",
	Initialised:   "initialised",
	Frozen:        "frozen",
}

// StateFromByte - reject any byte that is not a known state
func StateFromByte(b byte) (State, error) {
	if b >= stateLimit {
		return Uninitialised, fault.ErrInvalidStateTag
	}
	return State(b), nil
}

// StateFromString - parse a state name
func StateFromString(s string) (State, error) {
	for i, name := range stateNames {
		if s == name {
			return State(i), nil
		}
	}
	return Uninitialised, fault.ErrInvalidStateTag
}

// String - name of the state
func (state State) String() string {
	if state >= stateLimit {
		return "invalid"
	}
	return stateNames[state]
}

// MarshalText - state name for JSON
func (state State) MarshalText() ([]byte, error) {
	if state >= stateLimit {
		return nil, fault.ErrInvalidStateTag
	}
	return []byte(stateNames[state]), nil
}

// UnmarshalText - state name from JSON
func (state *State) UnmarshalText(s []byte) error {
	st, err := StateFromString(string(s))
	if nil != err {
		return err
	}
	*state = st
	return nil
}
