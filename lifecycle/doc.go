// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lifecycle - rules for changing collection and asset records
//
// Every rule takes decoded records and the set of verified signers and
// returns new record values.  The inputs are never modified, so a
// rejected operation leaves nothing to undo.
//
// Asset states:
//
//	Uninitialised --mint--> Initialised <--freeze/thaw--> Frozen
//	Initialised --burn--> (destroyed)
//
// State preconditions are checked before signatures.
package lifecycle
