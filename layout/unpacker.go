// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
)

// Unpacker - reads fields in layout order from a record buffer
//
// the first error sticks, later reads return zero values
type Unpacker struct {
	layout *Layout
	buffer []byte
	index  int
	err    error
}

// NewUnpacker - buffer must be exactly the layout size
func (l *Layout) NewUnpacker(buffer []byte) (*Unpacker, error) {
	if l.size != len(buffer) {
		return nil, fault.ErrBufferLength
	}
	return &Unpacker{
		layout: l,
		buffer: buffer,
	}, nil
}

func (u *Unpacker) next(kind Kind) []byte {
	if nil != u.err {
		return nil
	}
	if u.index >= len(u.layout.fields) || kind != u.layout.fields[u.index].Kind {
		u.err = fault.ErrLayoutMismatch
		return nil
	}
	start := u.layout.offsets[u.index]
	width := u.layout.fields[u.index].Width
	u.index += 1
	return u.buffer[start : start+width]
}

// Identifier - read a 32 byte key
func (u *Unpacker) Identifier() account.Identifier {
	id := account.Identifier{}
	if b := u.next(Identifier); nil != b {
		copy(id[:], b)
	}
	return id
}

// Uint64 - read a little-endian integer
func (u *Unpacker) Uint64() uint64 {
	if b := u.next(Uint64); nil != b {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// Bool - read 0 or 1, anything else is malformed
func (u *Unpacker) Bool() bool {
	b := u.next(Bool)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		u.err = fault.ErrInvalidBooleanTag
		return false
	}
}

// Tag - read an enumeration byte
func (u *Unpacker) Tag() byte {
	if b := u.next(Tag); nil != b {
		return b[0]
	}
	return 0
}

// OptionalKey - read presence tag and key
func (u *Unpacker) OptionalKey() *account.Identifier {
	b := u.next(OptionalKey)
	if nil == b {
		return nil
	}
	key, err := UnpackOptionalKey(b)
	if nil != err {
		u.err = err
		return nil
	}
	return key
}

// BoundedString - read a bounded string
func (u *Unpacker) BoundedString() string {
	b := u.next(String)
	if nil == b {
		return ""
	}
	s, err := UnpackString(b)
	if nil != err {
		u.err = err
		return ""
	}
	return s
}

// Fail - record a caller detected error, e.g. an out of range tag
func (u *Unpacker) Fail(err error) {
	if nil == u.err {
		u.err = err
	}
}

// Err - first error, or ErrLayoutMismatch if fields remain unread
func (u *Unpacker) Err() error {
	if nil != u.err {
		return u.err
	}
	if len(u.layout.fields) != u.index {
		return fault.ErrLayoutMismatch
	}
	return nil
}
