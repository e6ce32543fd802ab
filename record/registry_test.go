// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/price"
	"github.com/bitmark-inc/oracled/record"
	"github.com/bitmark-inc/oracled/storage"
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

func setupStorage(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "oracled-record")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	return func() {
		storage.Finalise()
		os.RemoveAll(dir)
	}
}

func pricedState() ledger.State {
	return ledger.State{
		Height:      1,
		Supply:      1000000,
		PriceHeight: 1,
		Price:       price.Quote("{USD:100}"),
	}
}

var alice = record.Arguments{
	Id:          "1",
	Name:        "Alice",
	Company:     "Acme",
	DateOfBirth: record.Date{Day: 1, Month: 2, Year: 1980},
}

func TestCreate(t *testing.T) {
	teardown := setupStorage(t)
	defer teardown()

	registry := record.New(storage.Pool.Records)
	params := ledger.DefaultParameters()

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err, "transaction") {
		return
	}

	state, event, err := registry.Create(trx, pricedState(), params, alice)
	assert.Nil(t, err, "create")
	assert.Equal(t, uint64(999980), state.Supply, "supply")
	assert.Equal(t, record.RecordAdded, event.Type, "event type")
	assert.Equal(t, uint64(20), event.New.Balance, "balance")

	// second create of the same id in the same transaction
	again, _, err := registry.Create(trx, state, params, alice)
	assert.Equal(t, fault.ErrAlreadyExists, err, "duplicate id")
	assert.Equal(t, uint64(999980), again.Supply, "supply unchanged")

	assert.Nil(t, trx.Commit(), "commit")

	r, err := registry.Get("1")
	assert.Nil(t, err, "get")
	assert.Equal(t, event.New, r, "stored record")

	// and after commit
	trx, _ = storage.NewDBTransaction()
	defer trx.Abort()
	_, _, err = registry.Create(trx, state, params, alice)
	assert.Equal(t, fault.ErrAlreadyExists, err, "duplicate after commit")
}

func TestCreateFailures(t *testing.T) {
	teardown := setupStorage(t)
	defer teardown()

	registry := record.New(storage.Pool.Records)
	params := ledger.DefaultParameters()

	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err, "transaction") {
		return
	}
	defer trx.Abort()

	long := strings.Repeat("x", 101)

	tests := []struct {
		args  record.Arguments
		state ledger.State
		err   error
	}{
		{record.Arguments{Id: long, DateOfBirth: alice.DateOfBirth}, pricedState(), fault.ErrTooLong},
		{record.Arguments{Id: "2", Name: long, DateOfBirth: alice.DateOfBirth}, pricedState(), fault.ErrTooLong},
		{record.Arguments{Id: "2", Company: long, DateOfBirth: alice.DateOfBirth}, pricedState(), fault.ErrTooLong},
		{record.Arguments{Id: "", DateOfBirth: alice.DateOfBirth}, pricedState(), fault.ErrMissingIdentity},
		{record.Arguments{Id: "2", DateOfBirth: record.Date{Day: 30, Month: 2, Year: 2000}}, pricedState(), fault.ErrInvalidDate},
		{alice, ledger.Genesis(1000000), fault.ErrPriceNotAvailable},
		{alice, ledger.State{Supply: 19, Price: price.Quote("{USD:100}")}, fault.ErrInsufficientSupply},
		{alice, ledger.State{Supply: 100, Price: price.Quote("{USD:abc}")}, fault.ErrNotNumeric},
	}

	for i, item := range tests {
		state, event, err := registry.Create(trx, item.state, params, item.args)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Nil(t, event, "%d: event", i)
		assert.Equal(t, item.state, state, "%d: state unchanged", i)
	}

	assert.False(t, trx.Has(storage.Pool.Records, []byte(alice.Id)), "nothing staged")
}

func TestUpdateRemove(t *testing.T) {
	teardown := setupStorage(t)
	defer teardown()

	registry := record.New(storage.Pool.Records)

	trx, _ := storage.NewDBTransaction()
	_, err := registry.Update(trx, alice)
	assert.Equal(t, fault.ErrNotFound, err, "update missing")
	_, err = registry.Remove(trx, alice.Id)
	assert.Equal(t, fault.ErrNotFound, err, "remove missing")

	state, _, err := registry.Create(trx, pricedState(), ledger.DefaultParameters(), alice)
	assert.Nil(t, err, "create")
	assert.Nil(t, trx.Commit(), "commit create")

	changed := alice
	changed.Name = "Alice B"
	changed.Company = "Other"
	changed.DateOfBirth = record.Date{Day: 3, Month: 4, Year: 1981}

	trx, _ = storage.NewDBTransaction()
	event, err := registry.Update(trx, changed)
	assert.Nil(t, err, "update")
	assert.Equal(t, record.RecordUpdated, event.Type, "event type")
	assert.Equal(t, "Alice", event.Old.Name, "old name")
	assert.Equal(t, "Alice B", event.New.Name, "new name")
	assert.Equal(t, event.Old.Balance, event.New.Balance, "balance unchanged")
	assert.Nil(t, trx.Commit(), "commit update")

	r, err := registry.Get(alice.Id)
	assert.Nil(t, err, "get")
	assert.Equal(t, "Other", r.Company, "company")
	assert.Equal(t, uint64(20), r.Balance, "balance")

	trx, _ = storage.NewDBTransaction()
	event, err = registry.Remove(trx, alice.Id)
	assert.Nil(t, err, "remove")
	assert.Equal(t, record.RecordRemoved, event.Type, "event type")
	assert.Nil(t, trx.Commit(), "commit remove")

	_, err = registry.Get(alice.Id)
	assert.Equal(t, fault.ErrNotFound, err, "removed")
	assert.Equal(t, uint64(999980), state.Supply, "supply not returned")
}

func TestList(t *testing.T) {
	teardown := setupStorage(t)
	defer teardown()

	registry := record.New(storage.Pool.Records)
	state := pricedState()

	trx, _ := storage.NewDBTransaction()
	for _, id := range []string{"c", "a", "b"} {
		args := alice
		args.Id = id
		var err error
		state, _, err = registry.Create(trx, state, ledger.DefaultParameters(), args)
		assert.Nil(t, err, "create: %s", id)
	}
	assert.Nil(t, trx.Commit(), "commit")

	records, err := registry.List("", 2)
	assert.Nil(t, err, "list")
	if assert.Equal(t, 2, len(records), "first page") {
		assert.Equal(t, "a", records[0].Id, "first")
		assert.Equal(t, "b", records[1].Id, "second")
	}

	records, err = registry.List("c", 10)
	assert.Nil(t, err, "list from c")
	if assert.Equal(t, 1, len(records), "second page") {
		assert.Equal(t, "c", records[0].Id, "third")
	}
}
