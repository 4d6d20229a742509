// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"unicode/utf8"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/fault"
)

// presence tags for an optional key
const (
	keyAbsent  = 0
	keyPresent = 1
)

// PackString - left align text in a zero filled field of width bytes
func PackString(text string, width int) ([]byte, error) {
	buffer := make([]byte, width)
	err := packStringInto(buffer, text, fault.ErrFieldOverflow)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

func packStringInto(dst []byte, text string, overflow error) error {
	if len(text) > len(dst) {
		return overflow
	}
	if !utf8.ValidString(text) {
		return fault.ErrInvalidUtf8
	}
	n := copy(dst, text)
	for i := n; i < len(dst); i += 1 {
		dst[i] = 0
	}
	return nil
}

// UnpackString - text up to the first zero byte, or the whole field
func UnpackString(buffer []byte) (string, error) {
	n := bytes.IndexByte(buffer, 0)
	if n < 0 {
		n = len(buffer)
	}
	if !utf8.Valid(buffer[:n]) {
		return "", fault.ErrInvalidUtf8
	}
	return string(buffer[:n]), nil
}

// PackOptionalKey - presence tag followed by the key or zeros
func PackOptionalKey(key *account.Identifier) []byte {
	buffer := make([]byte, OptionalKeyWidth)
	packOptionalKeyInto(buffer, key)
	return buffer
}

func packOptionalKeyInto(dst []byte, key *account.Identifier) {
	if nil == key {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	dst[0] = keyPresent
	copy(dst[1:], key[:])
}

// UnpackOptionalKey - nil when absent; any tag other than 0 or 1 is malformed
func UnpackOptionalKey(buffer []byte) (*account.Identifier, error) {
	if OptionalKeyWidth != len(buffer) {
		return nil, fault.ErrBufferLength
	}
	switch buffer[0] {
	case keyAbsent:
		return nil, nil
	case keyPresent:
		key := account.Identifier{}
		copy(key[:], buffer[1:])
		return &key, nil
	default:
		return nil, fault.ErrInvalidOptionTag
	}
}
