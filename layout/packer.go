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

// Packer - writes fields in layout order into a fresh buffer
//
// the first error sticks and all later calls are ignored
type Packer struct {
	layout *Layout
	buffer []byte
	index  int
	err    error
}

// NewPacker - start a record
func (l *Layout) NewPacker() *Packer {
	return &Packer{
		layout: l,
		buffer: make([]byte, l.size),
	}
}

// next field slice if it has the expected kind
func (p *Packer) next(kind Kind) ([]byte, *Field) {
	if nil != p.err {
		return nil, nil
	}
	if p.index >= len(p.layout.fields) || kind != p.layout.fields[p.index].Kind {
		p.err = fault.ErrLayoutMismatch
		return nil, nil
	}
	f := &p.layout.fields[p.index]
	start := p.layout.offsets[p.index]
	p.index += 1
	return p.buffer[start : start+f.Width], f
}

// Identifier - write a 32 byte key
func (p *Packer) Identifier(id account.Identifier) {
	if b, _ := p.next(Identifier); nil != b {
		copy(b, id[:])
	}
}

// Uint64 - write a little-endian integer
func (p *Packer) Uint64(value uint64) {
	if b, _ := p.next(Uint64); nil != b {
		binary.LittleEndian.PutUint64(b, value)
	}
}

// Bool - write 0 or 1
func (p *Packer) Bool(value bool) {
	if b, _ := p.next(Bool); nil != b {
		if value {
			b[0] = 1
		}
	}
}

// Tag - write an enumeration byte
func (p *Packer) Tag(value byte) {
	if b, _ := p.next(Tag); nil != b {
		b[0] = value
	}
}

// OptionalKey - write presence tag and key
func (p *Packer) OptionalKey(key *account.Identifier) {
	if b, _ := p.next(OptionalKey); nil != b {
		packOptionalKeyInto(b, key)
	}
}

// BoundedString - write a bounded string
func (p *Packer) BoundedString(text string) {
	b, f := p.next(String)
	if nil == b {
		return
	}
	overflow := f.Overflow
	if nil == overflow {
		overflow = fault.ErrFieldOverflow
	}
	p.err = packStringInto(b, text, overflow)
}

// Bytes - the finished record, nil on any error
func (p *Packer) Bytes() ([]byte, error) {
	if nil != p.err {
		return nil, p.err
	}
	if len(p.layout.fields) != p.index {
		return nil, fault.ErrLayoutMismatch
	}
	return p.buffer, nil
}
