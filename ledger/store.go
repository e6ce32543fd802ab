// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/storage"
)

// key of the single state record in the ledger pool
var stateKey = []byte("state")

// Reader - read only view of the ledger
type Reader interface {
	Current() State
	Nonce(*account.Account) uint64
}

// NonceStore - account nonces as seen by one storage transaction
type NonceStore interface {
	Nonce(*account.Account) uint64
	SetNonce(*account.Account, uint64)
}

// Store - the persistent ledger
//
// Current only returns a state after it has been committed and then
// passed to Publish
type Store struct {
	sync.RWMutex

	log     *logger.L
	states  storage.Handle
	nonces  storage.Handle
	current State
}

// New - load the ledger state from storage or create the genesis state
func New(log *logger.L, states storage.Handle, nonces storage.Handle, initialSupply uint64) (*Store, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	store := &Store{
		log:    log,
		states: states,
		nonces: nonces,
	}

	buffer := states.Get(stateKey)
	if nil == buffer {
		store.current = Genesis(initialSupply)
		log.Infof("genesis: supply: %d", initialSupply)
		return store, nil
	}

	state, err := UnpackState(buffer)
	if nil != err {
		log.Errorf("stored state: %x  error: %s", buffer, err)
		return nil, err
	}
	store.current = state
	log.Infof("loaded: height: %d  watermark: %d  supply: %d", state.Height, state.Watermark, state.Supply)

	return store, nil
}

// Current - the last published state
func (store *Store) Current() State {
	store.RLock()
	defer store.RUnlock()
	return store.current
}

// Stage - write a state into a transaction
func (store *Store) Stage(trx storage.Transaction, state State) {
	trx.Put(store.states, stateKey, state.Pack())
}

// Publish - make a committed state visible to readers
func (store *Store) Publish(state State) {
	store.Lock()
	store.current = state
	store.Unlock()

	store.log.Infof("height: %d  watermark: %d  supply: %d  price: %q", state.Height, state.Watermark, state.Supply, state.Price)
}

// Nonce - last executed nonce of an account, zero if it never signed
func (store *Store) Nonce(signer *account.Account) uint64 {
	n, _ := store.nonces.GetN(signer.Bytes())
	return n
}

// Nonces - nonce access bound to a transaction
func (store *Store) Nonces(trx storage.Transaction) NonceStore {
	return &trxNonces{
		trx:    trx,
		handle: store.nonces,
	}
}

type trxNonces struct {
	trx    storage.Transaction
	handle storage.Handle
}

func (t *trxNonces) Nonce(signer *account.Account) uint64 {
	n, _ := t.trx.GetN(t.handle, signer.Bytes())
	return n
}

func (t *trxNonces) SetNonce(signer *account.Account, nonce uint64) {
	t.trx.PutN(t.handle, signer.Bytes(), nonce)
}
