// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type FetchError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ParseError GenericError
type ProcessError GenericError
type ValidityError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyExists            = ExistsError("already exists")
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrBadStatus                = FetchError("bad response status")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey   = InvalidError("cannot decode private key")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrConfigurationNotTable    = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet         = ProcessError("database is not set")
	ErrDuplicateTag             = ValidityError("submission for this tag is already pending")
	ErrFuture                   = ValidityError("submission height is in the future")
	ErrInsufficientSupply       = ProcessError("insufficient token supply")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidDataDirectory     = InvalidError("invalid data directory")
	ErrInvalidDate              = InvalidError("invalid date")
	ErrInvalidExchangeRate      = InvalidError("invalid exchange rate")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = ProcessError("invalid logger channel")
	ErrInvalidRecord            = InvalidError("invalid record")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidState             = InvalidError("invalid ledger state")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists     = ExistsError("key file already exists")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrMalformed                = ParseError("malformed quote")
	ErrMissingFeedURL           = InvalidError("missing feed url")
	ErrMissingIdentity          = InvalidError("missing identity")
	ErrNoResponse               = FetchError("no response")
	ErrNoSigner                 = ProcessError("no signing keys available")
	ErrNotDigest                = InvalidError("not a digest")
	ErrNotFound                 = NotFoundError("not found")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrNotNumeric               = ParseError("quote value is not numeric")
	ErrNotPlainFileName         = InvalidError("not a plain file name")
	ErrNotPrivateKey            = InvalidError("not a private key")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrNotTransactionPack       = InvalidError("not a transaction pack")
	ErrOutOfRange               = ParseError("quote value out of range")
	ErrPriceNotAvailable        = NotFoundError("price not available")
	ErrQuoteTooLong             = ValidityError("quote too long")
	ErrResponseTooLong          = FetchError("response too long")
	ErrSendFailed               = FetchError("send failed")
	ErrStale                    = ValidityError("submission is stale")
	ErrStaleNonce               = ValidityError("nonce already used")
	ErrTooLong                  = InvalidError("value too long")
	ErrTransactionAlreadyExists = ExistsError("transaction already exists")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrUnknownTransactionType   = InvalidError("unknown transaction type")
	ErrWrongNetworkForAccount   = InvalidError("wrong network for account")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e FetchError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ParseError) Error() string    { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ValidityError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrFetch(e error) bool    { _, ok := e.(FetchError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrParse(e error) bool    { _, ok := e.(ParseError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrValidity(e error) bool { _, ok := e.(ValidityError); return ok }
