// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/keystore"
	keystoremocks "github.com/bitmark-inc/oracled/keystore/mocks"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/reservoir"
	"github.com/bitmark-inc/oracled/signer"
	"github.com/bitmark-inc/oracled/signer/mocks"
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

var quote = price.Quote("{USD:100}")

func newKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewKey(true)
	if nil != err {
		t.Fatalf("new key error: %s", err)
	}
	return key
}

func TestSubmitSigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	k1 := newKey(t)
	k2 := newKey(t)
	keys := keystore.NewMemory(k1, k2)
	submitter := mocks.NewMockSubmitter(ctl)

	submitter.EXPECT().NextNonce(gomock.Any()).Return(uint64(3)).Times(2)
	submitter.EXPECT().StoreSigned(gomock.Any()).DoAndReturn(
		func(tx *transactionrecord.PriceSigned) (*reservoir.SubmitInfo, bool, error) {
			assert.Equal(t, uint64(3), tx.Nonce, "nonce")
			assert.Equal(t, quote, tx.Quote, "quote")
			packed, err := tx.Pack()
			if nil != err {
				return nil, false, err
			}
			if tx.Signer.String() == k2.Account().String() {
				return nil, false, fault.ErrDuplicateTag
			}
			return &reservoir.SubmitInfo{TxId: packed.TxId(), Packed: packed}, false, nil
		}).Times(2)

	s, err := signer.New(logger.New("signer"), keys, submitter)
	if !assert.Nil(t, err, "new") {
		return
	}

	results, err := s.SubmitSigned(quote)
	assert.Nil(t, err, "submit")
	if !assert.Equal(t, 2, len(results), "results") {
		return
	}

	accounts := keys.Accounts()
	for i, result := range results {
		assert.Equal(t, accounts[i].String(), result.Account.String(), "%d: key order", i)
		if result.Account.String() == k2.Account().String() {
			assert.Equal(t, fault.ErrDuplicateTag, result.Err, "%d: failing account", i)
			assert.Equal(t, merkle.Digest{}, result.TxId, "%d: no tx id", i)
		} else {
			assert.Nil(t, result.Err, "%d: succeeding account", i)
			assert.NotEqual(t, merkle.Digest{}, result.TxId, "%d: tx id", i)
		}
	}
}

func TestSubmitSignedNoKeys(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, err := signer.New(logger.New("signer"), keystore.NewMemory(), mocks.NewMockSubmitter(ctl))
	if !assert.Nil(t, err, "new") {
		return
	}

	_, err = s.SubmitSigned(quote)
	assert.Equal(t, fault.ErrNoSigner, err, "no keys")
}

func TestSubmitSignedSignFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := newKey(t)
	keys := keystoremocks.NewMockKeyStore(ctl)
	submitter := mocks.NewMockSubmitter(ctl)

	keys.EXPECT().Accounts().Return([]*account.Account{key.Account()})
	submitter.EXPECT().NextNonce(key.Account()).Return(uint64(1))
	keys.EXPECT().Sign(key.Account(), gomock.Any()).Return(nil, fault.ErrKeyNotFound)
	submitter.EXPECT().StoreSigned(gomock.Any()).Times(0)

	s, err := signer.New(logger.New("signer"), keys, submitter)
	if !assert.Nil(t, err, "new") {
		return
	}

	results, err := s.SubmitSigned(quote)
	assert.Nil(t, err, "submit")
	if assert.Equal(t, 1, len(results), "results") {
		assert.Equal(t, fault.ErrKeyNotFound, results[0].Err, "sign error")
	}
}

func TestNewWithoutLogger(t *testing.T) {
	_, err := signer.New(nil, nil, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}
