// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sort"

	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/transactionrecord"
	"github.com/bitmark-inc/oracled/validator"
)

// FetchPending - up to count submissions, highest priority first then
// in order of arrival
func (r *Reservoir) FetchPending(count int) ([]Pending, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	r.RLock()
	items := make([]*pendingItem, 0, len(r.entries))
	for _, item := range r.entries {
		items = append(items, item)
	}
	r.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].validity.Priority != items[j].validity.Priority {
			return items[i].validity.Priority > items[j].validity.Priority
		}
		return items[i].sequence < items[j].sequence
	})

	if len(items) > count {
		items = items[:count]
	}

	result := make([]Pending, len(items))
	for i, item := range items {
		result[i] = Pending{
			TxId:   item.txId,
			Packed: item.packed,
		}
	}
	return result, nil
}

// Remove - drop submissions that were executed or rejected by a block
func (r *Reservoir) Remove(txIds []merkle.Digest) {
	r.Lock()
	defer r.Unlock()

	for _, txId := range txIds {
		r.internalDelete(txId)
	}
}

// Prune - re-validate everything against a newly committed state
//
// returns the number of submissions dropped
func (r *Reservoir) Prune(state ledger.State) int {
	r.Lock()
	defer r.Unlock()

	n := 0
	for txId, item := range r.entries {
		if !r.stillValid(state, item) {
			r.log.Infof("pruned: %s", txId)
			r.internalDelete(txId)
			n += 1
		}
	}
	r.pruned.Add(uint64(n))
	return n
}

// hold lock before calling
func (r *Reservoir) stillValid(state ledger.State, item *pendingItem) bool {
	if state.Height >= item.height+item.validity.Longevity {
		return false
	}

	switch tx := item.tx.(type) {
	case *transactionrecord.PriceUnsigned:
		validity, err := validator.ValidateUnsigned(state, tx, r.params)
		if nil != err {
			return false
		}
		// the window moved on
		return string(validity.Tag) == string(item.validity.Tag)

	case *transactionrecord.PriceSigned:
		_, err := validator.ValidateSigned(r.ledger.Nonce(tx.Signer), tx, r.params)
		return nil == err

	default:
		return false
	}
}
