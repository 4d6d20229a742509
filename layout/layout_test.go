// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
	"github.com/bitmark-inc/nftregistry/layout"
)

var errLabelTooLong = fault.OverflowError("label too long")

var testLayout = layout.New(
	layout.Field{Name: "key", Kind: layout.Identifier},
	layout.Field{Name: "count", Kind: layout.Uint64},
	layout.Field{Name: "flag", Kind: layout.Bool},
	layout.Field{Name: "label", Kind: layout.String, Width: 4, Overflow: errLabelTooLong},
	layout.Field{Name: "tag", Kind: layout.Tag},
	layout.Field{Name: "other", Kind: layout.OptionalKey},
)

func TestPackString(t *testing.T) {
	items := []struct {
		text     string
		width    int
		expected []byte
		err      error
	}{
		{"", 4, []byte{0, 0, 0, 0}, nil},
		{"ab", 4, []byte{'a', 'b', 0, 0}, nil},
		{"abcd", 4, []byte{'a', 'b', 'c', 'd'}, nil},
		{"abcde", 4, nil, fault.ErrFieldOverflow},
		{"é", 2, []byte{0xc3, 0xa9}, nil},
		{"é", 1, nil, fault.ErrFieldOverflow},
		{"\xff", 4, nil, fault.ErrInvalidUtf8},
	}

	for i, item := range items {
		b, err := layout.PackString(item.text, item.width)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, b, "%d: wrong bytes", i)
	}
}

func TestUnpackString(t *testing.T) {
	items := []struct {
		buffer   []byte
		expected string
		err      error
	}{
		{[]byte{0, 0, 0, 0}, "", nil},
		{[]byte{'a', 'b', 0, 0}, "ab", nil},
		{[]byte{'a', 'b', 'c', 'd'}, "abcd", nil},
		{[]byte{'a', 0, 'c', 'd'}, "a", nil}, // first zero byte wins
		{[]byte{0xc3, 0x28, 0, 0}, "", fault.ErrInvalidUtf8},
		{[]byte{'x', 0, 0xff, 0xff}, "x", nil},
	}

	for i, item := range items {
		s, err := layout.UnpackString(item.buffer)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, s, "%d: wrong text", i)
	}
}

func TestStringEmbeddedZero(t *testing.T) {
	b, err := layout.PackString("ab\x00cd", 8)
	assert.Nil(t, err, "pack error")

	s, err := layout.UnpackString(b)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, "ab", s, "text after NUL must be dropped")
}

func TestOptionalKey(t *testing.T) {
	key := account.Identifier{0x11, 0x22}

	b := layout.PackOptionalKey(&key)
	assert.Equal(t, layout.OptionalKeyWidth, len(b), "wrong width")
	assert.Equal(t, byte(1), b[0], "wrong tag")

	k, err := layout.UnpackOptionalKey(b)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &key, k, "key changed")

	b = layout.PackOptionalKey(nil)
	assert.Equal(t, make([]byte, layout.OptionalKeyWidth), b, "absent key not zero")

	k, err = layout.UnpackOptionalKey(b)
	assert.Nil(t, err, "unpack error")
	assert.Nil(t, k, "absent key decoded as present")

	b[0] = 2
	_, err = layout.UnpackOptionalKey(b)
	assert.Equal(t, fault.ErrInvalidOptionTag, err, "bad tag accepted")

	_, err = layout.UnpackOptionalKey(b[:32])
	assert.Equal(t, fault.ErrBufferLength, err, "short buffer accepted")
}

func TestLayoutOffsets(t *testing.T) {
	assert.Equal(t, 32+8+1+4+1+33, testLayout.Size(), "wrong size")

	offsets := map[string]int{
		"key":   0,
		"count": 32,
		"flag":  40,
		"label": 41,
		"tag":   45,
		"other": 46,
	}
	for name, expected := range offsets {
		offset, ok := testLayout.Offset(name)
		assert.True(t, ok, "missing field: %s", name)
		assert.Equal(t, expected, offset, "wrong offset for: %s", name)
	}

	_, ok := testLayout.Offset("nothing")
	assert.False(t, ok, "unexpected field")

	w, ok := testLayout.Width("label")
	assert.True(t, ok, "missing label")
	assert.Equal(t, 4, w, "wrong label width")

	fields := testLayout.Fields()
	names := []string{"key", "count", "flag", "label", "tag", "other"}
	widths := []int{32, 8, 1, 4, 1, 33}
	assert.Equal(t, len(names), len(fields), "wrong field count")
	for i, f := range fields {
		assert.Equal(t, names[i], f.Name, "%d: wrong name", i)
		assert.Equal(t, widths[i], f.Width, "%d: wrong width", i)
	}

	fields[0].Name = "changed"
	offset, ok := testLayout.Offset("key")
	assert.True(t, ok, "field list shared with layout")
	assert.Equal(t, 0, offset, "wrong key offset")
}

func packTest(label string, flag bool, other *account.Identifier) ([]byte, error) {
	p := testLayout.NewPacker()
	p.Identifier(account.Identifier{0x01})
	p.Uint64(0x0102030405060708)
	p.Bool(flag)
	p.BoundedString(label)
	p.Tag(7)
	p.OptionalKey(other)
	return p.Bytes()
}

func TestPackUnpack(t *testing.T) {
	other := account.Identifier{0x99}
	b, err := packTest("xyz", true, &other)
	assert.Nil(t, err, "pack error")
	assert.Equal(t, testLayout.Size(), len(b), "wrong length")
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b[32:40], "integer not little-endian")

	u, err := testLayout.NewUnpacker(b)
	assert.Nil(t, err, "unpacker error")

	assert.Equal(t, account.Identifier{0x01}, u.Identifier(), "wrong key")
	assert.Equal(t, uint64(0x0102030405060708), u.Uint64(), "wrong count")
	assert.True(t, u.Bool(), "wrong flag")
	assert.Equal(t, "xyz", u.BoundedString(), "wrong label")
	assert.Equal(t, byte(7), u.Tag(), "wrong tag")
	assert.Equal(t, &other, u.OptionalKey(), "wrong optional key")
	assert.Nil(t, u.Err(), "unexpected error")
}

func TestPackOverflow(t *testing.T) {
	b, err := packTest("abcde", false, nil)
	assert.Equal(t, errLabelTooLong, err, "wrong overflow error")
	assert.Nil(t, b, "partial output returned")
}

func TestPackOrder(t *testing.T) {
	p := testLayout.NewPacker()
	p.Uint64(1)
	_, err := p.Bytes()
	assert.Equal(t, fault.ErrLayoutMismatch, err, "out of order field accepted")

	p = testLayout.NewPacker()
	p.Identifier(account.Identifier{})
	_, err = p.Bytes()
	assert.Equal(t, fault.ErrLayoutMismatch, err, "incomplete record accepted")
}

func TestUnpackMalformed(t *testing.T) {
	good, err := packTest("ok", false, nil)
	assert.Nil(t, err, "pack error")

	_, err = testLayout.NewUnpacker(good[1:])
	assert.Equal(t, fault.ErrBufferLength, err, "short buffer accepted")

	_, err = testLayout.NewUnpacker(append(good, 0))
	assert.Equal(t, fault.ErrBufferLength, err, "long buffer accepted")

	items := []struct {
		offset int
		value  byte
		err    error
	}{
		{40, 2, fault.ErrInvalidBooleanTag},
		{41, 0xff, fault.ErrInvalidUtf8},
		{46, 5, fault.ErrInvalidOptionTag},
	}

	for i, item := range items {
		b := bytes.Repeat([]byte{0}, len(good))
		copy(b, good)
		b[item.offset] = item.value

		u, err := testLayout.NewUnpacker(b)
		assert.Nil(t, err, "%d: unpacker error", i)
		u.Identifier()
		u.Uint64()
		u.Bool()
		u.BoundedString()
		u.Tag()
		u.OptionalKey()
		assert.Equal(t, item.err, u.Err(), "%d: wrong error", i)
	}
}

func TestUnpackFail(t *testing.T) {
	b, err := packTest("", false, nil)
	assert.Nil(t, err, "pack error")

	u, err := testLayout.NewUnpacker(b)
	assert.Nil(t, err, "unpacker error")

	u.Identifier()
	u.Fail(fault.ErrInvalidStateTag)
	u.Fail(fault.ErrBufferLength)
	assert.Equal(t, fault.ErrInvalidStateTag, u.Err(), "first error must stick")
}
