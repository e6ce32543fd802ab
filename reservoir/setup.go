// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/background"
	"github.com/bitmark-inc/oracled/counter"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/transactionrecord"
	"github.com/bitmark-inc/oracled/validator"
)

// wall clock limit for a pending item, applies even if no blocks are
// produced
const (
	expiryTime = 1 * time.Hour
)

// SubmitInfo - result of a store
type SubmitInfo struct {
	TxId     merkle.Digest
	Packed   transactionrecord.Packed
	Validity *validator.Validity
}

// Pending - a submission returned by FetchPending
type Pending struct {
	TxId   merkle.Digest
	Packed transactionrecord.Packed
}

// Counters - snapshot of the reservoir statistics
type Counters struct {
	Pending    int    `json:"pending"`
	Unsigned   int    `json:"unsigned"`
	Signed     int    `json:"signed"`
	Admitted   uint64 `json:"admitted,string"`
	Duplicates uint64 `json:"duplicates,string"`
	Rejected   uint64 `json:"rejected,string"`
	Pruned     uint64 `json:"pruned,string"`
}

type pendingItem struct {
	txId     merkle.Digest
	packed   transactionrecord.Packed
	tx       transactionrecord.Transaction
	validity *validator.Validity
	sequence uint64    // arrival order
	height   uint64    // ledger height at admission
	expires  time.Time // wall clock expiry
}

// Reservoir - the pending pool
type Reservoir struct {
	sync.RWMutex

	log      *logger.L
	ledger   ledger.Reader
	params   ledger.Parameters
	filename string

	sequence uint64
	entries  map[merkle.Digest]*pendingItem
	tags     map[string]merkle.Digest

	admitted   counter.Counter
	duplicates counter.Counter
	rejected   counter.Counter
	pruned     counter.Counter

	background *background.T
}

// New - create the pool and start its expiry process
//
// cacheFile is where pending submissions are saved on Finalise, an
// empty name disables saving
func New(log *logger.L, reader ledger.Reader, params ledger.Parameters, cacheFile string) (*Reservoir, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == reader {
		return nil, fault.ErrNotInitialised
	}

	log.Info("starting…")

	r := &Reservoir{
		log:      log,
		ledger:   reader,
		params:   params,
		filename: cacheFile,
		entries:  make(map[merkle.Digest]*pendingItem),
		tags:     make(map[string]merkle.Digest),
	}

	processes := background.Processes{
		&cleaner{
			log: logger.New("expiration"),
		},
	}
	r.background = background.Start(processes, r)

	return r, nil
}

// Finalise - stop background and save pending items
func (r *Reservoir) Finalise() error {
	r.log.Info("shutting down…")
	r.log.Flush()

	r.background.Stop()

	var err error
	if "" != r.filename {
		err = r.saveToFile()
	}

	r.log.Info("finished")
	r.log.Flush()
	return err
}

// ReadCounters - current statistics
func (r *Reservoir) ReadCounters() Counters {
	r.RLock()
	defer r.RUnlock()

	c := Counters{
		Pending:    len(r.entries),
		Admitted:   r.admitted.Uint64(),
		Duplicates: r.duplicates.Uint64(),
		Rejected:   r.rejected.Uint64(),
		Pruned:     r.pruned.Uint64(),
	}
	for _, item := range r.entries {
		switch item.tx.(type) {
		case *transactionrecord.PriceUnsigned:
			c.Unsigned += 1
		case *transactionrecord.PriceSigned:
			c.Signed += 1
		}
	}
	return c
}

// hold lock before calling
func (r *Reservoir) internalDelete(txId merkle.Digest) {
	item, ok := r.entries[txId]
	if !ok {
		return
	}
	delete(r.tags, string(item.validity.Tag))
	delete(r.entries, txId)
}
