// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/storage"
)

const (
	logFile  = "oracle-tool.log"
	logSize  = 1024 * 1024
	logCount = 2
)

// open the logger and the database of a stopped node
//
// the returned function must be called to close both
func openDatabase(m *metadata, initialSupply uint64, readOnly bool) (*ledger.Store, func(), error) {
	if "" == m.database {
		return nil, nil, fault.ErrDatabaseIsNotSet
	}

	level := "warn"
	if m.verbose {
		level = "info"
	}
	err := logger.Initialise(logger.Configuration{
		Directory: os.TempDir(),
		File:      logFile,
		Size:      logSize,
		Count:     logCount,
		Console:   m.verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if nil != err {
		return nil, nil, err
	}

	err = storage.Initialise(m.database, readOnly)
	if nil != err {
		logger.Finalise()
		return nil, nil, err
	}

	finalise := func() {
		storage.Finalise()
		logger.Finalise()
	}

	store, err := ledger.New(logger.New("ledger"), storage.Pool.Ledger, storage.Pool.Nonces, initialSupply)
	if nil != err {
		finalise()
		return nil, nil, err
	}
	return store, finalise, nil
}
