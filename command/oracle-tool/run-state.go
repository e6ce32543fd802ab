// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/oracled/record"
	"github.com/bitmark-inc/oracled/storage"
)

func runState(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store, finalise, err := openDatabase(m, c.Uint64("supply"), storage.ReadOnly)
	if nil != err {
		return err
	}
	defer finalise()

	return printJson(m.w, store.Current())
}

func runRecords(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	_, finalise, err := openDatabase(m, 0, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer finalise()

	records, err := record.New(storage.Pool.Records).List(c.String("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, records)
}
