// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/executor"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/ledger/mocks"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	err := os.RemoveAll(testingDirName)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

func newExecutor(t *testing.T) *executor.Executor {
	params := ledger.DefaultParameters()
	params.Testing = true
	e, err := executor.New(logger.New("executor"), params)
	if nil != err {
		t.Fatalf("new executor error: %s", err)
	}
	return e
}

func packUnsigned(t *testing.T, height uint64, quote string) transactionrecord.Packed {
	packed, err := (&transactionrecord.PriceUnsigned{Height: height, Quote: price.Quote(quote)}).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func packSigned(t *testing.T, key *account.PrivateKey, nonce uint64, quote string) transactionrecord.Packed {
	tx := &transactionrecord.PriceSigned{
		Signer: key.Account(),
		Nonce:  nonce,
		Quote:  price.Quote(quote),
	}
	message, err := tx.SigningMessage()
	if nil != err {
		t.Fatalf("signing message error: %s", err)
	}
	tx.Signature = key.Sign(message)
	packed, err := tx.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	return packed
}

func TestApplyUnsignedRaisesWatermark(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	nonces := mocks.NewMockNonceStore(ctl)

	e := newExecutor(t)
	state := ledger.State{Height: 5, Watermark: 5, Supply: 100}

	// proposed at committed height 5, executed in the next block
	first := packUnsigned(t, 5, "{USD:100}")
	second := packUnsigned(t, 5, "{USD:105}")

	next, results := e.Apply(state, 6, []transactionrecord.Packed{first, second}, nonces)

	assert.Equal(t, uint64(6), next.Height, "height")
	assert.Equal(t, uint64(7), next.Watermark, "executing height plus one interval")
	assert.Equal(t, price.Quote("{USD:100}"), next.Price, "first price wins")
	assert.Equal(t, uint64(6), next.PriceHeight, "price height")
	assert.Equal(t, uint64(100), next.Supply, "supply untouched")

	if assert.Equal(t, 2, len(results), "results") {
		assert.Nil(t, results[0].Err, "first accepted")
		assert.Equal(t, first.TxId(), results[0].TxId, "first tx id")
		assert.Equal(t, fault.ErrStale, results[1].Err, "duplicate in block is stale")
	}
}

func TestApplyLateUnsignedKeepsWatermarkAhead(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	nonces := mocks.NewMockNonceStore(ctl)

	e := newExecutor(t)
	state := ledger.State{Height: 7, Watermark: 5, Supply: 100}

	next, results := e.Apply(state, 8, []transactionrecord.Packed{packUnsigned(t, 5, "{USD:100}")}, nonces)

	if assert.Equal(t, 1, len(results), "results") {
		assert.Nil(t, results[0].Err, "late inclusion accepted")
	}
	assert.Equal(t, uint64(9), next.Watermark, "watermark past the ledger height")

	// proposals for the heights already passed are now stale
	for h := uint64(6); h <= 8; h += 1 {
		_, results = e.Apply(next, 9, []transactionrecord.Packed{packUnsigned(t, h, "{USD:101}")}, nonces)
		assert.Equal(t, fault.ErrStale, results[0].Err, "height: %d", h)
	}
}

func TestApplyRejections(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	nonces := mocks.NewMockNonceStore(ctl)

	e := newExecutor(t)
	state := ledger.State{Height: 9, Watermark: 5, Price: price.Quote("{USD:1}"), PriceHeight: 3}

	submissions := []transactionrecord.Packed{
		packUnsigned(t, 4, "{USD:100}"),
		packUnsigned(t, 11, "{USD:100}"),
		packUnsigned(t, 6, "{USD:abc}"),
		packUnsigned(t, 6, "100"),
		transactionrecord.Packed{0x7f},
		append(packUnsigned(t, 6, "{USD:100}"), 0x00),
	}
	next, results := e.Apply(state, 10, submissions, nonces)

	expected := []error{
		fault.ErrStale,
		fault.ErrFuture,
		fault.ErrNotNumeric,
		fault.ErrMalformed,
		fault.ErrUnknownTransactionType,
		fault.ErrNotTransactionPack,
	}
	for i, err := range expected {
		assert.Equal(t, err, results[i].Err, "%d: error", i)
	}

	assert.Equal(t, uint64(10), next.Height, "height advances")
	assert.Equal(t, state.Watermark, next.Watermark, "watermark unchanged")
	assert.Equal(t, state.Price, next.Price, "price unchanged")
	assert.Equal(t, state.PriceHeight, next.PriceHeight, "price height unchanged")
}

func TestApplySigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	nonces := mocks.NewMockNonceStore(ctl)

	key, err := account.NewKey(true)
	if !assert.Nil(t, err, "new key") {
		return
	}
	signer := key.Account()

	gomock.InOrder(
		nonces.EXPECT().Nonce(signer).Return(uint64(2)),
		nonces.EXPECT().SetNonce(signer, uint64(3)),
		nonces.EXPECT().Nonce(signer).Return(uint64(3)),
	)

	e := newExecutor(t)
	state := ledger.State{Height: 1, Watermark: 1}

	submissions := []transactionrecord.Packed{
		packSigned(t, key, 3, "{USD:200}"),
		packSigned(t, key, 3, "{USD:300}"),
	}
	next, results := e.Apply(state, 2, submissions, nonces)

	assert.Nil(t, results[0].Err, "first signed")
	assert.Equal(t, fault.ErrStaleNonce, results[1].Err, "replayed nonce")
	assert.Equal(t, price.Quote("{USD:200}"), next.Price, "price")
	assert.Equal(t, uint64(2), next.PriceHeight, "price height")
	assert.Equal(t, uint64(1), next.Watermark, "signed does not move watermark")
}

func TestNewWithoutLogger(t *testing.T) {
	_, err := executor.New(nil, ledger.DefaultParameters())
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}
