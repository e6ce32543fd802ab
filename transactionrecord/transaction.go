// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	PriceUnsignedTag = TagType(iota) // throttled price from any node
	PriceSignedTag   = TagType(iota) // price signed by a local key

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
}

// PriceUnsigned - a quote proposed for a ledger height, carries no
// signer and is rate limited by the throttle watermark
type PriceUnsigned struct {
	Height uint64      `json:"height,string"` // height the quote was fetched for
	Quote  price.Quote `json:"quote"`         // raw feed bytes
}

// PriceSigned - a quote signed by a locally held account
type PriceSigned struct {
	Signer    *account.Account  `json:"signer"`       // base58
	Nonce     uint64            `json:"nonce,string"` // strictly increasing per signer
	Quote     price.Quote       `json:"quote"`        // raw feed bytes
	Signature account.Signature `json:"signature"`    // hex
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *PriceUnsigned, PriceUnsigned:
		return "PriceUnsigned", true

	case *PriceSigned, PriceSigned:
		return "PriceSigned", true

	default:
		return "*unknown*", false
	}
}

// TxId - the identifier of a packed record
func (record Packed) TxId() merkle.Digest {
	return merkle.NewDigest(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
