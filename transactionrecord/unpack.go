// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *transactionrecord.PriceUnsigned:
func (record Packed) Unpack(testnet bool) (t Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransactionPack
		}
	}()

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}

unpack_switch:
	switch TagType(recordType) {

	case PriceUnsignedTag:

		// height
		height, heightLength := util.FromVarint64(record[n:])
		if 0 == heightLength {
			break unpack_switch
		}
		n += heightLength

		// quote
		quote, quoteLength := util.ReadBytes(record[n:], constants.MaximumQuoteLength)
		if 0 == quoteLength {
			break unpack_switch
		}
		n += quoteLength

		r := &PriceUnsigned{
			Height: height,
			Quote:  price.Quote(quote),
		}
		return r, n, nil

	case PriceSignedTag:

		// signer public key
		signerBytes, signerLength := util.ReadBytes(record[n:], constants.MaximumAccountBytes)
		if 0 == signerLength {
			break unpack_switch
		}
		n += signerLength
		signer, err := account.AccountFromBytes(signerBytes)
		if nil != err {
			return nil, 0, err
		}
		if signer.IsTesting() != testnet {
			return nil, 0, fault.ErrWrongNetworkForAccount
		}

		// nonce
		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		// quote
		quote, quoteLength := util.ReadBytes(record[n:], constants.MaximumQuoteLength)
		if 0 == quoteLength {
			break unpack_switch
		}
		n += quoteLength

		// signature is last
		signature, signatureLength := util.ReadBytes(record[n:], constants.MaximumSignatureBytes)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &PriceSigned{
			Signer:    signer,
			Nonce:     nonce,
			Quote:     price.Quote(quote),
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag
		return nil, 0, fault.ErrUnknownTransactionType
	}
	return nil, 0, fault.ErrNotTransactionPack
}
