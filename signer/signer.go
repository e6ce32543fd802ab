// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signer

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/account"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/keystore"
	"github.com/bitmark-inc/oracled/merkle"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/reservoir"
	"github.com/bitmark-inc/oracled/transactionrecord"
)

// Submitter - where signed prices are sent
type Submitter interface {
	NextNonce(*account.Account) uint64
	StoreSigned(*transactionrecord.PriceSigned) (*reservoir.SubmitInfo, bool, error)
}

// Result - outcome for one account
type Result struct {
	Account *account.Account
	TxId    merkle.Digest
	Err     error
}

// Signer - submits a signed price for every local key
type Signer struct {
	log       *logger.L
	keys      keystore.KeyStore
	submitter Submitter
}

// New - create a signer
func New(log *logger.L, keys keystore.KeyStore, submitter Submitter) (*Signer, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Signer{
		log:       log,
		keys:      keys,
		submitter: submitter,
	}, nil
}

// SubmitSigned - sign and submit a quote with every account
//
// accounts are processed concurrently, results are in account order
// and a failure for one account does not affect the others
func (s *Signer) SubmitSigned(quote price.Quote) ([]Result, error) {
	accounts := s.keys.Accounts()
	if 0 == len(accounts) {
		return nil, fault.ErrNoSigner
	}

	results := make([]Result, len(accounts))

	var wg sync.WaitGroup
	for i, signer := range accounts {
		wg.Add(1)
		go func(result *Result, signer *account.Account) {
			defer wg.Done()
			result.Account = signer
			result.TxId, result.Err = s.submit(signer, quote)
		}(&results[i], signer)
	}
	wg.Wait()

	for _, result := range results {
		if nil != result.Err {
			s.log.Warnf("account: %s  error: %s", result.Account, result.Err)
		} else {
			s.log.Infof("account: %s  tx id: %s", result.Account, result.TxId)
		}
	}

	return results, nil
}

func (s *Signer) submit(signer *account.Account, quote price.Quote) (merkle.Digest, error) {
	tx := &transactionrecord.PriceSigned{
		Signer: signer,
		Nonce:  s.submitter.NextNonce(signer),
		Quote:  quote,
	}

	message, err := tx.SigningMessage()
	if nil != err {
		return merkle.Digest{}, err
	}

	tx.Signature, err = s.keys.Sign(signer, message)
	if nil != err {
		return merkle.Digest{}, err
	}

	info, duplicate, err := s.submitter.StoreSigned(tx)
	if nil != err {
		return merkle.Digest{}, err
	}
	if duplicate {
		s.log.Debugf("account: %s  duplicate: %s", signer, info.TxId)
	}
	return info.TxId, nil
}
