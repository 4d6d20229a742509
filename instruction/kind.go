// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"strings"

	"github.com/bitmark-inc/nftregistry/fault"
)

// AuthorityKind - which authority an Authorise instruction replaces
type AuthorityKind uint64

// authority kinds
const (
	MintAuthority   AuthorityKind = 1
	FreezeAuthority AuthorityKind = 2
	CloseAuthority  AuthorityKind = 3
)

// UpdateKind - which URI an Update instruction replaces
type UpdateKind uint64

// update kinds
const (
	IconURI  UpdateKind = 1
	AssetURI UpdateKind = 2
)

// AuthorityKindFromString - mint, freeze or close
func AuthorityKindFromString(s string) (AuthorityKind, error) {
	switch strings.ToLower(s) {
	case "mint":
		return MintAuthority, nil
	case "freeze":
		return FreezeAuthority, nil
	case "close":
		return CloseAuthority, nil
	default:
		return 0, fault.ErrInvalidAuthorityKind
	}
}

// String - name of the kind
func (kind AuthorityKind) String() string {
	switch kind {
	case MintAuthority:
		return "mint"
	case FreezeAuthority:
		return "freeze"
	case CloseAuthority:
		return "close"
	default:
		return "invalid"
	}
}

// Valid - true for a known kind
func (kind AuthorityKind) Valid() bool {
	return kind >= MintAuthority && kind <= CloseAuthority
}

// MarshalText - kind name for JSON
func (kind AuthorityKind) MarshalText() ([]byte, error) {
	if !kind.Valid() {
		return nil, fault.ErrInvalidAuthorityKind
	}
	return []byte(kind.String()), nil
}

// UnmarshalText - kind name from JSON
func (kind *AuthorityKind) UnmarshalText(s []byte) error {
	k, err := AuthorityKindFromString(string(s))
	if nil != err {
		return err
	}
	*kind = k
	return nil
}

// UpdateKindFromString - icon or asset
func UpdateKindFromString(s string) (UpdateKind, error) {
	switch strings.ToLower(s) {
	case "icon":
		return IconURI, nil
	case "asset":
		return AssetURI, nil
	default:
		return 0, fault.ErrInvalidUpdateKind
	}
}

// String - name of the kind
func (kind UpdateKind) String() string {
	switch kind {
	case IconURI:
		return "icon"
	case AssetURI:
		return "asset"
	default:
		return "invalid"
	}
}

// Valid - true for a known kind
func (kind UpdateKind) Valid() bool {
	return IconURI == kind || AssetURI == kind
}

// MarshalText - kind name for JSON
func (kind UpdateKind) MarshalText() ([]byte, error) {
	if !kind.Valid() {
		return nil, fault.ErrInvalidUpdateKind
	}
	return []byte(kind.String()), nil
}

// UnmarshalText - kind name from JSON
func (kind *UpdateKind) UnmarshalText(s []byte) error {
	k, err := UpdateKindFromString(string(s))
	if nil != err {
		return err
	}
	*kind = k
	return nil
}
