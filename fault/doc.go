// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every error belongs to exactly one class, the class is determined
// with the IsErrXXX functions.  The six classes used by the record
// codec and the authorisation rules are:
//
//	MalformedError      - stored bytes have the wrong length or a bad tag
//	OverflowError       - a string does not fit its fixed width field
//	EncodingError       - a string field is not valid UTF-8
//	AuthorisationError  - the required authority did not sign
//	StateError          - operation not permitted in the current state
//	NotInitialisedError - the record has not been created
package fault
