// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type EncodingError GenericError
type ExistsError GenericError
type InvalidError GenericError
type MalformedError GenericError
type NotFoundError GenericError
type NotInitialisedError GenericError
type OverflowError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountMismatch              = InvalidError("record address does not match instruction")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAssetFrozen                  = StateError("asset is frozen")
	ErrAssetNotFound                = NotFoundError("asset not found")
	ErrAssetNotFrozen               = StateError("asset is not frozen")
	ErrAssetNotInitialised          = NotInitialisedError("asset record is not initialised")
	ErrAssetURITooLong              = OverflowError("asset uri too long")
	ErrBufferLength                 = MalformedError("record buffer length is invalid")
	ErrCannotDecodeIdentifier       = InvalidError("cannot decode identifier")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrCollectionMismatch           = InvalidError("asset does not belong to collection")
	ErrCollectionNotFound           = NotFoundError("collection not found")
	ErrCollectionNotInitialised     = NotInitialisedError("collection record is not initialised")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrCryptoFailed                 = ProcessError("encrypt or decrypt failed")
	ErrFieldOverflow                = OverflowError("string exceeds field width")
	ErrFreezeAuthorityNotSet        = StateError("collection has no freeze authority")
	ErrIconURITooLong               = OverflowError("icon uri too long")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound         = NotFoundError("identity name not found")
	ErrIllegalTransition            = StateError("state transition is not permitted")
	ErrIncompatibleOptions          = InvalidError("incompatible options")
	ErrInvalidAuthorityKind         = InvalidError("invalid authority kind")
	ErrInvalidBooleanTag            = MalformedError("boolean tag is invalid")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIdentifier            = InvalidError("identifier is not a 32 byte key")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidOptionTag             = MalformedError("optional key tag is invalid")
	ErrInvalidPasswordLength        = InvalidError("invalid password length")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidSeed                  = InvalidError("invalid seed")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStateTag              = MalformedError("asset state tag is invalid")
	ErrInvalidTotalSupply           = InvalidError("total supply must be greater than zero")
	ErrInvalidUpdateKind            = InvalidError("invalid update kind")
	ErrInvalidUtf8                  = EncodingError("bounded string is not valid UTF-8")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrLayoutMismatch               = MalformedError("field does not match record layout")
	ErrMintAuthorityCleared         = StateError("collection mint authority has been cleared")
	ErrMissingAccount               = InvalidError("instruction requires an account that was not supplied")
	ErrMissingAuthor                = AuthorisationError("author did not sign")
	ErrMissingCloseAuthority        = AuthorisationError("close authority did not sign")
	ErrMissingFreezeAuthority       = AuthorisationError("freeze authority did not sign")
	ErrMissingMintAuthority         = AuthorisationError("mint authority did not sign")
	ErrMissingOwner                 = AuthorisationError("owner did not sign")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingProposal              = AuthorisationError("proposal did not sign")
	ErrNameTooLong                  = OverflowError("name too long")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotInstructionPack           = MalformedError("not an instruction pack")
	ErrNotOwner                     = AuthorisationError("sender is not the current owner")
	ErrNotPrivateKey                = InvalidError("identity has no private key")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordAlreadyInitialised     = StateError("record is already initialised")
	ErrSignatureTooLong             = InvalidError("signature too long")
	ErrStringTooLong                = InvalidError("string too long")
	ErrSupplyExhausted              = StateError("collection total supply reached")
	ErrSymbolTooLong                = OverflowError("symbol too long")
	ErrTooManySigners               = InvalidError("too many signers")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrUnknownInstruction           = InvalidError("unknown instruction")
	ErrUnsupportedPrivateKeyLength  = InvalidError("unsupported private key length")
	ErrWrongPassword                = InvalidError("wrong password")
	ErrWrongProgram                 = InvalidError("instruction is for a different program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string  { return string(e) }
func (e EncodingError) Error() string       { return string(e) }
func (e ExistsError) Error() string         { return string(e) }
func (e InvalidError) Error() string        { return string(e) }
func (e MalformedError) Error() string      { return string(e) }
func (e NotFoundError) Error() string       { return string(e) }
func (e NotInitialisedError) Error() string { return string(e) }
func (e OverflowError) Error() string       { return string(e) }
func (e ProcessError) Error() string        { return string(e) }
func (e StateError) Error() string          { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool  { _, ok := e.(AuthorisationError); return ok }
func IsErrEncoding(e error) bool       { _, ok := e.(EncodingError); return ok }
func IsErrExists(e error) bool         { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool        { _, ok := e.(InvalidError); return ok }
func IsErrMalformed(e error) bool      { _, ok := e.(MalformedError); return ok }
func IsErrNotFound(e error) bool       { _, ok := e.(NotFoundError); return ok }
func IsErrNotInitialised(e error) bool { _, ok := e.(NotInitialisedError); return ok }
func IsErrOverflow(e error) bool       { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool        { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool          { _, ok := e.(StateError); return ok }
