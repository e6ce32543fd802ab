// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single batched write transaction
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	GetNB(Handle, []byte) (uint64, []byte)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// TransactionData - the Transaction implementation
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start staging writes
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value pair
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

// PutN - stage a key/uint64 pair
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

// Delete - stage removal of a key
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Delete(key)
}

// Get - read including staged writes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// GetN - read including staged writes
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

// GetNB - read including staged writes
func (t *TransactionData) GetNB(h Handle, key []byte) (uint64, []byte) {
	return h.GetNB(key)
}

// Has - check including staged writes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write all staged changes at once
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all staged changes
func (t *TransactionData) Abort() {
	t.access.Abort()
}
