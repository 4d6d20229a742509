// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/nftregistry/fault"
)

var predicates = []struct {
	name string
	test func(error) bool
}{
	{"authorisation", fault.IsErrAuthorisation},
	{"encoding", fault.IsErrEncoding},
	{"exists", fault.IsErrExists},
	{"invalid", fault.IsErrInvalid},
	{"malformed", fault.IsErrMalformed},
	{"not found", fault.IsErrNotFound},
	{"not initialised", fault.IsErrNotInitialised},
	{"overflow", fault.IsErrOverflow},
	{"process", fault.IsErrProcess},
	{"state", fault.IsErrState},
}

// test that each error belongs to exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err   error
		class string
	}{
		{fault.AuthorisationError("authorisation one"), "authorisation"},
		{fault.ErrMissingMintAuthority, "authorisation"},
		{fault.ErrNotOwner, "authorisation"},
		{fault.EncodingError("encoding one"), "encoding"},
		{fault.ErrInvalidUtf8, "encoding"},
		{fault.ExistsError("exists one"), "exists"},
		{fault.ErrKeyFileAlreadyExists, "exists"},
		{fault.InvalidError("invalid one"), "invalid"},
		{fault.ErrCollectionMismatch, "invalid"},
		{fault.MalformedError("malformed one"), "malformed"},
		{fault.ErrBufferLength, "malformed"},
		{fault.ErrInvalidStateTag, "malformed"},
		{fault.NotFoundError("not found one"), "not found"},
		{fault.ErrAssetNotFound, "not found"},
		{fault.NotInitialisedError("not initialised one"), "not initialised"},
		{fault.ErrCollectionNotInitialised, "not initialised"},
		{fault.OverflowError("overflow one"), "overflow"},
		{fault.ErrNameTooLong, "overflow"},
		{fault.ProcessError("process one"), "process"},
		{fault.ErrRateLimiting, "process"},
		{fault.ErrTransactionInUse, "process"},
		{fault.StateError("state one"), "state"},
		{fault.ErrAssetFrozen, "state"},
		{fault.ErrMintAuthorityCleared, "state"},
	}

	for i, e := range errorList {
		for _, p := range predicates {
			expected := p.name == e.class
			if p.test(e.err) != expected {
				t.Errorf("%d: expected '%s' == %v for err = %v", i, p.name, expected, e.err)
			}
		}
	}
}

func TestMessage(t *testing.T) {
	if fault.ErrSupplyExhausted.Error() != "collection total supply reached" {
		t.Errorf("unexpected message: %q", fault.ErrSupplyExhausted.Error())
	}
}
