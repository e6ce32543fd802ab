// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/counter"
	"github.com/bitmark-inc/oracled/executor"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/messagebus"
	"github.com/bitmark-inc/oracled/reservoir"
	"github.com/bitmark-inc/oracled/storage"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

// Ledger - the ledger operations used while producing a block
type Ledger interface {
	Current() ledger.State
	Nonces(storage.Transaction) ledger.NonceStore
	Publish(ledger.State)
	Stage(storage.Transaction, ledger.State)
}

// Pool - source of pending submissions
type Pool interface {
	FetchPending(int) ([]reservoir.Pending, error)
	Prune(ledger.State) int
	Remove([]merkle.Digest)
}

// Executor - the state transition
type Executor interface {
	Apply(ledger.State, uint64, []transactionrecord.Packed, ledger.NonceStore) (ledger.State, []executor.Result)
}

// Counters - block statistics
type Counters struct {
	Blocks   uint64 `json:"blocks,string"`
	Executed uint64 `json:"executed,string"`
	Rejected uint64 `json:"rejected,string"`
	Failures uint64 `json:"failures,string"`
}

// Producer - produces one height per interval
type Producer struct {
	log      *logger.L
	interval time.Duration
	ledger   Ledger
	pool     Pool
	executor Executor
	begin    func() (storage.Transaction, error)

	blocks   counter.Counter
	executed counter.Counter
	rejected counter.Counter
	failures counter.Counter
}

// New - create a producer
//
// begin opens the storage transaction each block is committed in
func New(log *logger.L, interval time.Duration, store Ledger, pool Pool, exec Executor, begin func() (storage.Transaction, error)) (*Producer, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if interval <= 0 {
		interval = constants.DefaultBlockInterval
	}
	return &Producer{
		log:      log,
		interval: interval,
		ledger:   store,
		pool:     pool,
		executor: exec,
		begin:    begin,
	}, nil
}

// Run - background process loop
func (p *Producer) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log

	log.Info("starting…")

	ticker := time.NewTicker(p.interval)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-ticker.C:
			_, err := p.Produce()
			if nil != err {
				log.Errorf("produce error: %s", err)
			}
		}
	}
	ticker.Stop()

	log.Info("finished")
}

// Produce - execute pending submissions at the next height and commit
//
// on any failure the transaction is aborted and the ledger state is
// not changed
func (p *Producer) Produce() (ledger.State, error) {
	state := p.ledger.Current()
	height := state.Height + 1

	pending, err := p.pool.FetchPending(constants.MaximumPendingPerBlock)
	if nil != err {
		p.failures.Increment()
		return state, err
	}

	trx, err := p.begin()
	if nil != err {
		p.failures.Increment()
		return state, err
	}

	submissions := make([]transactionrecord.Packed, len(pending))
	for i, item := range pending {
		submissions[i] = item.Packed
	}

	next, results := p.executor.Apply(state, height, submissions, p.ledger.Nonces(trx))
	p.ledger.Stage(trx, next)

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("height: %d  commit error: %s", height, err)
		trx.Abort()
		p.failures.Increment()
		return state, err
	}
	p.ledger.Publish(next)

	// executed and rejected submissions both leave the pool
	txIds := make([]merkle.Digest, len(results))
	for i, result := range results {
		txIds[i] = result.TxId
		if nil == result.Err {
			p.executed.Increment()
		} else {
			p.rejected.Increment()
		}
	}
	p.pool.Remove(txIds)
	pruned := p.pool.Prune(next)

	p.blocks.Increment()
	p.log.Infof("height: %d  submissions: %d  pruned: %d", height, len(results), pruned)

	messagebus.Bus.Broadcast.SendHeight(height)

	return next, nil
}

// ReadCounters - current statistics
func (p *Producer) ReadCounters() Counters {
	return Counters{
		Blocks:   p.blocks.Uint64(),
		Executed: p.executed.Uint64(),
		Rejected: p.rejected.Uint64(),
		Failures: p.failures.Uint64(),
	}
}
