// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/transactionrecord"
	"github.com/bitmark-inc/oracled/validator"
)

var quote = price.Quote("{USD:100}")

func TestValidateUnsigned(t *testing.T) {
	params := ledger.DefaultParameters()
	state := ledger.State{
		Height:    10,
		Watermark: 8,
	}

	tests := []struct {
		height uint64
		quote  price.Quote
		err    error
	}{
		{7, quote, fault.ErrStale},
		{8, quote, nil},
		{10, quote, nil},
		{11, quote, fault.ErrFuture},
		{9, price.Quote(bytes.Repeat([]byte{'x'}, 101)), fault.ErrQuoteTooLong},
	}

	for i, item := range tests {
		tx := &transactionrecord.PriceUnsigned{
			Height: item.height,
			Quote:  item.quote,
		}
		validity, err := validator.ValidateUnsigned(state, tx, params)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil != item.err {
			assert.Nil(t, validity, "%d: validity", i)
			assert.True(t, fault.IsErrValidity(err), "%d: error class", i)
			continue
		}
		assert.Equal(t, params.UnsignedPriority, validity.Priority, "%d: priority", i)
		assert.Equal(t, uint64(3), validity.Longevity, "%d: longevity", i)
		assert.True(t, validity.Propagate, "%d: propagate", i)
		assert.Equal(t, validator.UnsignedTag(8), validity.Tag, "%d: tag", i)
	}
}

func TestUnsignedTagSharedPerWindow(t *testing.T) {
	params := ledger.DefaultParameters()
	state := ledger.State{
		Height:    10,
		Watermark: 9,
	}

	v1, err := validator.ValidateUnsigned(state, &transactionrecord.PriceUnsigned{Height: 9, Quote: quote}, params)
	assert.Nil(t, err, "first")
	v2, err := validator.ValidateUnsigned(state, &transactionrecord.PriceUnsigned{Height: 10, Quote: price.Quote("{USD:101}")}, params)
	assert.Nil(t, err, "second")
	assert.Equal(t, v1.Tag, v2.Tag, "same window same tag")

	assert.NotEqual(t, validator.UnsignedTag(9), validator.UnsignedTag(10), "different windows")
	assert.Equal(t, []byte("price-unsigned\x00\x00\x00\x00\x00\x00\x00\x09"), validator.UnsignedTag(9), "tag bytes")
}

func TestValidateUnsignedDoesNotMutate(t *testing.T) {
	state := ledger.State{
		Height:    5,
		Watermark: 5,
		Supply:    100,
	}
	before := state
	_, _ = validator.ValidateUnsigned(state, &transactionrecord.PriceUnsigned{Height: 5, Quote: quote}, ledger.DefaultParameters())
	assert.Equal(t, before, state, "state unchanged")
}

func makeSigned(t *testing.T, key *account.PrivateKey, nonce uint64) *transactionrecord.PriceSigned {
	tx := &transactionrecord.PriceSigned{
		Signer: key.Account(),
		Nonce:  nonce,
		Quote:  quote,
	}
	message, err := tx.SigningMessage()
	if nil != err {
		t.Fatalf("signing message error: %s", err)
	}
	tx.Signature = key.Sign(message)
	return tx
}

func TestValidateSigned(t *testing.T) {
	params := ledger.DefaultParameters()
	params.Testing = true

	key, err := account.NewKey(true)
	if !assert.Nil(t, err, "new key") {
		return
	}

	tx := makeSigned(t, key, 4)

	validity, err := validator.ValidateSigned(3, tx, params)
	assert.Nil(t, err, "valid")
	assert.Equal(t, params.SignedPriority, validity.Priority, "priority")
	assert.Equal(t, validator.SignedTag(tx), validity.Tag, "tag")
	assert.Equal(t, append(key.Account().Bytes(), 0, 0, 0, 0, 0, 0, 0, 4), validity.Tag, "tag bytes")

	_, err = validator.ValidateSigned(4, tx, params)
	assert.Equal(t, fault.ErrStaleNonce, err, "equal nonce")

	_, err = validator.ValidateSigned(5, tx, params)
	assert.Equal(t, fault.ErrStaleNonce, err, "older nonce")

	tx.Quote = price.Quote("{USD:1}")
	_, err = validator.ValidateSigned(3, tx, params)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered quote")
}

func TestValidateSignedWrongNetwork(t *testing.T) {
	key, err := account.NewKey(false)
	if !assert.Nil(t, err, "new key") {
		return
	}
	params := ledger.DefaultParameters()
	params.Testing = true

	_, err = validator.ValidateSigned(0, makeSigned(t, key, 1), params)
	assert.Equal(t, fault.ErrWrongNetworkForAccount, err, "live key on test network")

	_, err = validator.ValidateSigned(0, &transactionrecord.PriceSigned{Nonce: 1, Quote: quote}, params)
	assert.Equal(t, fault.ErrNotPublicKey, err, "no signer")
}
