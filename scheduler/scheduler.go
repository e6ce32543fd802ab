// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/background"
	"github.com/bitmark-inc/oracled/counter"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/feed"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/messagebus"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/reservoir"
	"github.com/bitmark-inc/oracled/signer"
	"github.com/bitmark-inc/oracled/throttle"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

// Ledger - committed state reader
type Ledger interface {
	Current() ledger.State
}

// Pool - accepts unsigned proposals
type Pool interface {
	StoreUnsigned(*transactionrecord.PriceUnsigned) (*reservoir.SubmitInfo, bool, error)
}

// Signer - submits signed proposals
type Signer interface {
	SubmitSigned(price.Quote) ([]signer.Result, error)
}

// Counters - attempt statistics
type Counters struct {
	Attempts      uint64 `json:"attempts,string"`
	FetchFailures uint64 `json:"fetchFailures,string"`
	ParseFailures uint64 `json:"parseFailures,string"`
	Unsigned      uint64 `json:"unsigned,string"`
	Signed        uint64 `json:"signed,string"`
	Skipped       uint64 `json:"skipped,string"`
	Panics        uint64 `json:"panics,string"`
}

// Scheduler - runs one attempt per block height
type Scheduler struct {
	log     *logger.L
	fetcher feed.Fetcher
	ledger  Ledger
	pool    Pool
	signer  Signer
	params  ledger.Parameters
	queue   <-chan messagebus.Message

	inFlight int32
	wg       sync.WaitGroup

	attempts      counter.Counter
	fetchFailures counter.Counter
	parseFailures counter.Counter
	unsigned      counter.Counter
	signed        counter.Counter
	skipped       counter.Counter
	panics        counter.Counter
}

// New - create a scheduler, it listens for heights from this point
func New(log *logger.L, fetcher feed.Fetcher, reader Ledger, pool Pool, s Signer, params ledger.Parameters) (*Scheduler, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Scheduler{
		log:     log,
		fetcher: fetcher,
		ledger:  reader,
		pool:    pool,
		signer:  s,
		params:  params,
		queue:   messagebus.Bus.Broadcast.Chan(0),
	}, nil
}

// Run - background process loop
//
// a height arriving while an attempt is still running is skipped
func (s *Scheduler) Run(args interface{}, shutdown <-chan struct{}) {

	log := s.log

	log.Info("starting…")

	ctx, cancel := background.Context(shutdown)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-s.queue:
			height, ok := item.Height()
			if !ok {
				continue loop
			}

			if !atomic.CompareAndSwapInt32(&s.inFlight, 0, 1) {
				s.skipped.Increment()
				log.Warnf("height: %d  skipped: previous attempt still running", height)
				continue loop
			}

			s.wg.Add(1)
			go func(height uint64) {
				defer s.wg.Done()
				defer atomic.StoreInt32(&s.inFlight, 0)
				s.Attempt(ctx, height)
			}(height)
		}
	}

	cancel()
	s.wg.Wait()
	messagebus.Bus.Broadcast.Release(s.queue)

	log.Info("finished")
}

// Attempt - fetch, convert and submit a price for a committed height
//
// every failure is logged and ends the attempt, nothing is fatal
func (s *Scheduler) Attempt(ctx context.Context, height uint64) {
	log := s.log

	defer func() {
		if r := recover(); nil != r {
			s.panics.Increment()
			log.Errorf("height: %d  attempt panic: %v", height, r)
		}
	}()

	s.attempts.Increment()

	quote, err := s.fetcher.Fetch(ctx)
	if nil != err {
		s.fetchFailures.Increment()
		log.Warnf("height: %d  fetch error: %s", height, err)
		return
	}

	amount, err := price.Convert(quote, s.params.Currency, s.params.ExchangeRate)
	if nil != err {
		s.parseFailures.Increment()
		log.Warnf("height: %d  quote: %q  parse error: %s", height, quote, err)
		return
	}
	log.Infof("height: %d  quote: %q  tokens: %d", height, quote, amount)

	// cancelled before submission leaves nothing behind
	if nil != ctx.Err() {
		return
	}

	state := s.ledger.Current()
	if throttle.MaySubmitUnsigned(state.Watermark, height) {
		tx := &transactionrecord.PriceUnsigned{
			Height: height,
			Quote:  quote,
		}
		info, duplicate, err := s.pool.StoreUnsigned(tx)
		if nil != err {
			log.Warnf("height: %d  unsigned rejected: %s", height, err)
		} else if !duplicate {
			s.unsigned.Increment()
			log.Infof("height: %d  unsigned: %s", height, info.TxId)
		}
	} else {
		log.Debugf("height: %d  below watermark: %d", height, state.Watermark)
	}

	if nil != ctx.Err() {
		return
	}

	results, err := s.signer.SubmitSigned(quote)
	if fault.ErrNoSigner == err {
		log.Warnf("height: %d  signed: %s", height, err)
		return
	}
	if nil != err {
		log.Errorf("height: %d  signed error: %s", height, err)
		return
	}
	for _, result := range results {
		if nil == result.Err {
			s.signed.Increment()
		}
	}
}

// ReadCounters - current statistics
func (s *Scheduler) ReadCounters() Counters {
	return Counters{
		Attempts:      s.attempts.Uint64(),
		FetchFailures: s.fetchFailures.Uint64(),
		ParseFailures: s.parseFailures.Uint64(),
		Unsigned:      s.unsigned.Uint64(),
		Signed:        s.signed.Uint64(),
		Skipped:       s.skipped.Uint64(),
		Panics:        s.panics.Uint64(),
	}
}
