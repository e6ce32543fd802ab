// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/storage"
)

// Registry - records keyed by id in one storage pool
//
// all changes are staged in the caller's transaction
type Registry struct {
	pool storage.Handle
}

// New - registry over a pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		pool: pool,
	}
}

// Create - add a record credited with tokens worth the current price
//
// returns the state with the issued amount taken from the supply, the
// caller must stage that state in the same transaction
func (registry *Registry) Create(trx storage.Transaction, state ledger.State, params ledger.Parameters, args Arguments) (ledger.State, *Event, error) {
	err := args.validate()
	if nil != err {
		return state, nil, err
	}

	key := []byte(args.Id)
	if trx.Has(registry.pool, key) {
		return state, nil, fault.ErrAlreadyExists
	}

	if !state.HasPrice() {
		return state, nil, fault.ErrPriceNotAvailable
	}

	amount, err := price.Convert(state.Price, params.Currency, params.ExchangeRate)
	if nil != err {
		return state, nil, err
	}

	newState, err := ledger.Issue(state, amount)
	if nil != err {
		return state, nil, err
	}

	r := &Record{
		Id:          args.Id,
		Name:        args.Name,
		Company:     args.Company,
		DateOfBirth: args.DateOfBirth,
		Balance:     amount,
	}
	trx.Put(registry.pool, key, r.pack())

	return newState, &Event{Type: RecordAdded, New: r}, nil
}

// Update - change the personal fields of a record, never the balance
func (registry *Registry) Update(trx storage.Transaction, args Arguments) (*Event, error) {
	err := args.validate()
	if nil != err {
		return nil, err
	}

	old, err := registry.read(trx.Get(registry.pool, []byte(args.Id)))
	if nil != err {
		return nil, err
	}

	r := *old
	r.Name = args.Name
	r.Company = args.Company
	r.DateOfBirth = args.DateOfBirth

	trx.Put(registry.pool, []byte(args.Id), r.pack())

	return &Event{Type: RecordUpdated, Old: old, New: &r}, nil
}

// Remove - delete a record
//
// the balance is not returned to the supply
func (registry *Registry) Remove(trx storage.Transaction, id string) (*Event, error) {
	old, err := registry.read(trx.Get(registry.pool, []byte(id)))
	if nil != err {
		return nil, err
	}

	trx.Delete(registry.pool, []byte(id))

	return &Event{Type: RecordRemoved, Old: old}, nil
}

// Get - read a record
func (registry *Registry) Get(id string) (*Record, error) {
	return registry.read(registry.pool.Get([]byte(id)))
}

// List - up to count records in id order from start
//
// an empty start begins at the first record
func (registry *Registry) List(start string, count int) ([]*Record, error) {
	cursor := registry.pool.NewFetchCursor()
	if "" != start {
		cursor.Seek([]byte(start))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*Record, 0, len(elements))
	for _, e := range elements {
		r, err := unpack(e.Value)
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (registry *Registry) read(buffer []byte) (*Record, error) {
	if nil == buffer {
		return nil, fault.ErrNotFound
	}
	return unpack(buffer)
}
