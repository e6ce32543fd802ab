// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
)

// KeyStore - the signing capability, private keys never leave it
type KeyStore interface {
	Accounts() []*account.Account
	Sign(*account.Account, []byte) (account.Signature, error)
}

// Memory - keys held in memory
type Memory struct {
	sync.RWMutex
	keys map[string]*account.PrivateKey
}

// NewMemory - a key store holding the given keys
func NewMemory(keys ...*account.PrivateKey) *Memory {
	m := &Memory{}
	m.replace(keys)
	return m
}

// Accounts - the accounts of all held keys, in key order
func (m *Memory) Accounts() []*account.Account {
	m.RLock()
	defer m.RUnlock()

	ids := make([]string, 0, len(m.keys))
	for id := range m.keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts := make([]*account.Account, len(ids))
	for i, id := range ids {
		accounts[i] = m.keys[id].Account()
	}
	return accounts
}

// Sign - sign a message with the key of an account
func (m *Memory) Sign(signer *account.Account, message []byte) (account.Signature, error) {
	m.RLock()
	key, ok := m.keys[string(signer.Bytes())]
	m.RUnlock()

	if !ok {
		return nil, fault.ErrKeyNotFound
	}
	return key.Sign(message), nil
}

// replace all keys
func (m *Memory) replace(keys []*account.PrivateKey) {
	keyMap := make(map[string]*account.PrivateKey, len(keys))
	for _, key := range keys {
		keyMap[string(key.Account().Bytes())] = key
	}

	m.Lock()
	m.keys = keyMap
	m.Unlock()
}
