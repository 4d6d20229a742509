// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - fixed width binary records
//
// A record layout is an ordered list of fields, each with a kind and a
// byte width.  Offsets and the total size follow from the list, so a
// record codec only states its fields in order and the Packer and
// Unpacker do the slicing.
//
// Field kinds:
//
//	Identifier   32 bytes
//	Uint64        8 bytes little-endian
//	Bool          1 byte, 0 or 1
//	Tag           1 byte enumeration, range checked by the caller
//	OptionalKey  33 bytes, presence tag ++ 32 byte body
//	String       N bytes, UTF-8 left aligned and zero padded
//
// Bounded strings end at the first zero byte, so a string that fills
// its field exactly has no terminator and text containing a NUL byte
// cannot be represented.
package layout
