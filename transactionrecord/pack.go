// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/util"
)

// Pack - pack PriceUnsigned
//
// Pack Varint64(tag) followed by fields in order as struct above
func (unsigned *PriceUnsigned) Pack() (Packed, error) {
	if len(unsigned.Quote) > constants.MaximumQuoteLength {
		return nil, fault.ErrQuoteTooLong
	}

	message := util.ToVarint64(uint64(PriceUnsignedTag))
	message = util.AppendVarint64(message, unsigned.Height)
	message = util.AppendBytes(message, unsigned.Quote)
	return message, nil
}

// Pack - pack PriceSigned
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure, this is
//       the message a signer must sign
func (signed *PriceSigned) Pack() (Packed, error) {
	if len(signed.Signature) > constants.MaximumSignatureBytes {
		return nil, fault.ErrTooLong
	}
	if len(signed.Quote) > constants.MaximumQuoteLength {
		return nil, fault.ErrQuoteTooLong
	}
	if nil == signed.Signer {
		return nil, fault.ErrNotPublicKey
	}

	message := signed.signingMessage()

	err := signed.Signer.CheckSignature(message, signed.Signature)
	if nil != err {
		return message, err
	}

	// Signature Last
	return util.AppendBytes(message, signed.Signature), nil
}

// SigningMessage - the bytes covered by the signature
func (signed *PriceSigned) SigningMessage() (Packed, error) {
	if len(signed.Quote) > constants.MaximumQuoteLength {
		return nil, fault.ErrQuoteTooLong
	}
	if nil == signed.Signer {
		return nil, fault.ErrNotPublicKey
	}
	return signed.signingMessage(), nil
}

func (signed *PriceSigned) signingMessage() Packed {
	message := util.ToVarint64(uint64(PriceSignedTag))
	message = appendAccount(message, signed.Signer)
	message = util.AppendVarint64(message, signed.Nonce)
	return util.AppendBytes(message, signed.Quote)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	return util.AppendBytes(buffer, address.Bytes())
}
