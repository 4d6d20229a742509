// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// SignerSet - ordered identifiers whose signatures were already verified
type SignerSet []Identifier

// NewSignerSet - build a set, dropping duplicates but keeping first-seen order
func NewSignerSet(signers ...Identifier) SignerSet {
	set := make(SignerSet, 0, len(signers))
	for _, s := range signers {
		if !set.Contains(s) {
			set = append(set, s)
		}
	}
	return set
}

// Contains - true if id is one of the signers
//
// the cleared (all-zero) identifier never matches
func (set SignerSet) Contains(id Identifier) bool {
	if id.IsZero() {
		return false
	}
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
