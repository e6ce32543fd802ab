// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/record"
	"github.com/bitmark-inc/oracled/storage"
)

// a registry change staged in trx, returning the state to stage with it
type change func(trx storage.Transaction, state ledger.State, registry *record.Registry) (ledger.State, *record.Event, error)

func runRecordAdd(c *cli.Context) error {
	args, err := recordArguments(c)
	if nil != err {
		return err
	}

	params := ledger.DefaultParameters()
	params.Currency = c.String("currency")
	params.ExchangeRate = c.Uint64("rate")

	return applyChange(c, func(trx storage.Transaction, state ledger.State, registry *record.Registry) (ledger.State, *record.Event, error) {
		return registry.Create(trx, state, params, args)
	})
}

func runRecordUpdate(c *cli.Context) error {
	args, err := recordArguments(c)
	if nil != err {
		return err
	}

	return applyChange(c, func(trx storage.Transaction, state ledger.State, registry *record.Registry) (ledger.State, *record.Event, error) {
		event, err := registry.Update(trx, args)
		return state, event, err
	})
}

func runRecordRemove(c *cli.Context) error {
	id := c.String("id")
	if "" == id {
		return fault.ErrMissingIdentity
	}

	return applyChange(c, func(trx storage.Transaction, state ledger.State, registry *record.Registry) (ledger.State, *record.Event, error) {
		event, err := registry.Remove(trx, id)
		return state, event, err
	})
}

// run one registry change and the ledger state in a single transaction
func applyChange(c *cli.Context, fn change) error {

	m := c.App.Metadata["config"].(*metadata)

	store, finalise, err := openDatabase(m, c.Uint64("supply"), storage.ReadWrite)
	if nil != err {
		return err
	}
	defer finalise()

	log := logger.New("registry")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	state, event, err := fn(trx, store.Current(), record.New(storage.Pool.Records))
	if nil != err {
		trx.Abort()
		log.Warnf("registry change error: %s", err)
		return err
	}

	store.Stage(trx, state)

	err = trx.Commit()
	if nil != err {
		log.Errorf("commit error: %s", err)
		return err
	}
	store.Publish(state)

	log.Infof("event: %s", event)
	if m.verbose {
		fmt.Fprintf(m.e, "event: %s\n", event)
	}

	return printJson(m.w, event)
}

func recordArguments(c *cli.Context) (record.Arguments, error) {
	id := c.String("id")
	if "" == id {
		return record.Arguments{}, fault.ErrMissingIdentity
	}

	dob, err := record.ParseDate(c.String("dob"))
	if nil != err {
		return record.Arguments{}, err
	}

	return record.Arguments{
		Id:          id,
		Name:        c.String("name"),
		Company:     c.String("company"),
		DateOfBirth: dob,
	}, nil
}
