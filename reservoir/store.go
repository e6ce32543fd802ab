// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/transactionrecord"
	"github.com/bitmark-inc/oracled/validator"
)

// StoreUnsigned - validate and admit an unsigned price
//
// returns the submission and a duplicate flag, the flag is set if the
// identical submission is already pending so a repeated submit is not
// an error
func (r *Reservoir) StoreUnsigned(tx *transactionrecord.PriceUnsigned) (*SubmitInfo, bool, error) {
	r.Lock()
	defer r.Unlock()

	state := r.ledger.Current()
	validity, err := validator.ValidateUnsigned(state, tx, r.params)
	if nil != err {
		r.rejected.Increment()
		return nil, false, err
	}

	packed, err := tx.Pack()
	if nil != err {
		r.rejected.Increment()
		return nil, false, err
	}

	return r.admit(tx, packed, validity, state.Height)
}

// StoreSigned - validate and admit a signed price
func (r *Reservoir) StoreSigned(tx *transactionrecord.PriceSigned) (*SubmitInfo, bool, error) {
	r.Lock()
	defer r.Unlock()

	if nil == tx.Signer {
		r.rejected.Increment()
		return nil, false, fault.ErrNotPublicKey
	}

	nonce := r.ledger.Nonce(tx.Signer)
	validity, err := validator.ValidateSigned(nonce, tx, r.params)
	if nil != err {
		r.rejected.Increment()
		return nil, false, err
	}

	packed, err := tx.Pack()
	if nil != err {
		r.rejected.Increment()
		return nil, false, err
	}

	return r.admit(tx, packed, validity, r.ledger.Current().Height)
}

// hold lock before calling
func (r *Reservoir) admit(tx transactionrecord.Transaction, packed transactionrecord.Packed, validity *validator.Validity, height uint64) (*SubmitInfo, bool, error) {
	txId := packed.TxId()

	result := &SubmitInfo{
		TxId:     txId,
		Packed:   packed,
		Validity: validity,
	}

	// if already seen just return the tx id
	if _, ok := r.entries[txId]; ok {
		r.log.Debugf("duplicate tx id: %s", txId)
		r.duplicates.Increment()
		return result, true, nil
	}

	// a different submission holds this tag
	if existing, ok := r.tags[string(validity.Tag)]; ok {
		r.log.Debugf("tag: %x  held by: %s  rejected: %s", validity.Tag, existing, txId)
		r.rejected.Increment()
		return nil, false, fault.ErrDuplicateTag
	}

	r.sequence += 1
	r.entries[txId] = &pendingItem{
		txId:     txId,
		packed:   packed,
		tx:       tx,
		validity: validity,
		sequence: r.sequence,
		height:   height,
		expires:  time.Now().Add(expiryTime),
	}
	r.tags[string(validity.Tag)] = txId
	r.admitted.Increment()

	r.log.Infof("admitted: %s  priority: %d", txId, validity.Priority)

	return result, false, nil
}

// NextNonce - the nonce a new signed submission from this account
// should use
//
// one more than the larger of the last executed nonce and any pending
// nonce of the account
func (r *Reservoir) NextNonce(signer *account.Account) uint64 {
	r.RLock()
	defer r.RUnlock()

	nonce := r.ledger.Nonce(signer)
	signerBytes := signer.Bytes()
	for _, item := range r.entries {
		tx, ok := item.tx.(*transactionrecord.PriceSigned)
		if !ok {
			continue
		}
		if tx.Nonce > nonce && bytes.Equal(signerBytes, tx.Signer.Bytes()) {
			nonce = tx.Nonce
		}
	}
	return nonce + 1
}
