// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/nftregistry/account"
)

// Kind - the encoding of one field
type Kind int

// field kinds
const (
	Identifier  Kind = iota
	Uint64      Kind = iota
	Bool        Kind = iota
	Tag         Kind = iota
	OptionalKey Kind = iota
	String      Kind = iota
)

// fixed widths
const (
	IdentifierWidth  = account.IdentifierLength
	Uint64Width      = 8
	BoolWidth        = 1
	TagWidth         = 1
	OptionalKeyWidth = 1 + account.IdentifierLength
)

// Field - one entry of a layout
type Field struct {
	Name     string
	Kind     Kind
	Width    int
	Overflow error // returned when a String does not fit; nil for the generic error
}

// Layout - ordered fields with precomputed offsets
type Layout struct {
	fields  []Field
	offsets []int
	size    int
}

// New - build a layout from fields in storage order
//
// widths of fixed kinds are filled in, String fields must give their width
func New(fields ...Field) *Layout {
	l := &Layout{
		fields:  make([]Field, len(fields)),
		offsets: make([]int, len(fields)),
	}
	offset := 0
	for i, f := range fields {
		switch f.Kind {
		case Identifier:
			f.Width = IdentifierWidth
		case Uint64:
			f.Width = Uint64Width
		case Bool:
			f.Width = BoolWidth
		case Tag:
			f.Width = TagWidth
		case OptionalKey:
			f.Width = OptionalKeyWidth
		case String:
			if f.Width <= 0 {
				panic("layout: string field without width: " + f.Name)
			}
		default:
			panic("layout: unknown field kind: " + f.Name)
		}
		l.fields[i] = f
		l.offsets[i] = offset
		offset += f.Width
	}
	l.size = offset
	return l
}

// Size - total bytes in a record
func (l *Layout) Size() int {
	return l.size
}

// Offset - start of the named field
func (l *Layout) Offset(name string) (int, bool) {
	for i, f := range l.fields {
		if name == f.Name {
			return l.offsets[i], true
		}
	}
	return 0, false
}

// Width - width of the named field
func (l *Layout) Width(name string) (int, bool) {
	for _, f := range l.fields {
		if name == f.Name {
			return f.Width, true
		}
	}
	return 0, false
}

// Fields - copy of the field list
func (l *Layout) Fields() []Field {
	fields := make([]Field, len(l.fields))
	copy(fields, l.fields)
	return fields
}
