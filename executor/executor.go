// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/throttle"
	"github.com/bitmark-inc/oracled/transactionrecord"
	"github.com/bitmark-inc/oracled/validator"
)

// Result - outcome of one submission in a block
type Result struct {
	TxId merkle.Digest
	Err  error
}

// Executor - applies submissions to a ledger state
type Executor struct {
	log    *logger.L
	params ledger.Parameters
}

// New - create an executor
func New(log *logger.L, params ledger.Parameters) (*Executor, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Executor{
		log:    log,
		params: params,
	}, nil
}

// Apply - execute submissions in order for a new height
//
// invalid submissions are reported in the results and skipped, the
// returned state always carries the new height
func (e *Executor) Apply(state ledger.State, height uint64, submissions []transactionrecord.Packed, nonces ledger.NonceStore) (ledger.State, []Result) {
	state.Height = height

	results := make([]Result, len(submissions))
	for i, packed := range submissions {
		results[i].TxId = packed.TxId()

		next, err := e.apply(state, packed, nonces)
		if nil != err {
			e.log.Warnf("height: %d  tx id: %s  rejected: %s", height, results[i].TxId, err)
			results[i].Err = err
			continue
		}
		e.log.Infof("height: %d  tx id: %s  price: %q  watermark: %d", height, results[i].TxId, next.Price, next.Watermark)
		state = next
	}
	return state, results
}

func (e *Executor) apply(state ledger.State, packed transactionrecord.Packed, nonces ledger.NonceStore) (ledger.State, error) {
	unpacked, n, err := packed.Unpack(e.params.Testing)
	if nil != err {
		return state, err
	}
	if n != len(packed) {
		return state, fault.ErrNotTransactionPack
	}

	switch tx := unpacked.(type) {

	case *transactionrecord.PriceUnsigned:
		_, err := validator.ValidateUnsigned(state, tx, e.params)
		if nil != err {
			return state, err
		}
		err = e.checkQuote(tx.Quote)
		if nil != err {
			return state, err
		}
		// the window is measured from the executing height
		state.Watermark = throttle.Advance(state.Watermark, state.Height, e.params.UnsignedInterval)
		state.Price = tx.Quote
		state.PriceHeight = state.Height
		return state, nil

	case *transactionrecord.PriceSigned:
		_, err := validator.ValidateSigned(nonces.Nonce(tx.Signer), tx, e.params)
		if nil != err {
			return state, err
		}
		err = e.checkQuote(tx.Quote)
		if nil != err {
			return state, err
		}
		nonces.SetNonce(tx.Signer, tx.Nonce)
		state.Price = tx.Quote
		state.PriceHeight = state.Height
		return state, nil

	default:
		return state, fault.ErrUnknownTransactionType
	}
}

// a quote must convert before it can become the ledger price
func (e *Executor) checkQuote(quote price.Quote) error {
	_, err := price.Convert(quote, e.params.Currency, e.params.ExchangeRate)
	return err
}
