// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator

import (
	"encoding/binary"

	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

// prefix of every unsigned tag
var unsignedTagPrefix = []byte("price-unsigned")

// Validity - admission properties of an accepted submission
//
// submissions with equal tags are mutually exclusive: only one may be
// pending at any time
type Validity struct {
	Priority  uint64 `json:"priority,string"`
	Tag       []byte `json:"tag"`
	Longevity uint64 `json:"longevity,string"`
	Propagate bool   `json:"propagate"`
}

// ValidateUnsigned - check an unsigned price against a ledger state
//
// the state is never modified
func ValidateUnsigned(state ledger.State, tx *transactionrecord.PriceUnsigned, params ledger.Parameters) (*Validity, error) {
	if state.Watermark > tx.Height {
		return nil, fault.ErrStale
	}
	if tx.Height > state.Height {
		return nil, fault.ErrFuture
	}
	if len(tx.Quote) > constants.MaximumQuoteLength {
		return nil, fault.ErrQuoteTooLong
	}

	return &Validity{
		Priority:  params.UnsignedPriority,
		Tag:       UnsignedTag(state.Watermark),
		Longevity: params.Longevity,
		Propagate: true,
	}, nil
}

// UnsignedTag - the tag shared by all unsigned submissions of one
// throttle window
func UnsignedTag(watermark uint64) []byte {
	tag := make([]byte, len(unsignedTagPrefix)+8)
	n := copy(tag, unsignedTagPrefix)
	binary.BigEndian.PutUint64(tag[n:], watermark)
	return tag
}

// ValidateSigned - check a signed price against the signer's last
// executed nonce
func ValidateSigned(nonce uint64, tx *transactionrecord.PriceSigned, params ledger.Parameters) (*Validity, error) {
	if nil == tx.Signer {
		return nil, fault.ErrNotPublicKey
	}
	if tx.Signer.IsTesting() != params.Testing {
		return nil, fault.ErrWrongNetworkForAccount
	}

	message, err := tx.SigningMessage()
	if nil != err {
		return nil, err
	}
	err = tx.Signer.CheckSignature(message, tx.Signature)
	if nil != err {
		return nil, fault.ErrInvalidSignature
	}

	if tx.Nonce <= nonce {
		return nil, fault.ErrStaleNonce
	}

	return &Validity{
		Priority:  params.SignedPriority,
		Tag:       SignedTag(tx),
		Longevity: params.Longevity,
		Propagate: true,
	}, nil
}

// SignedTag - account ++ nonce
func SignedTag(tx *transactionrecord.PriceSigned) []byte {
	signer := tx.Signer.Bytes()
	tag := make([]byte, len(signer)+8)
	n := copy(tag, signer)
	binary.BigEndian.PutUint64(tag[n:], tx.Nonce)
	return tag
}
