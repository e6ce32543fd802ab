// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// this is the expected order
var expectedElements = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

func populate(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	// reverse order so iteration must sort
	for i := len(expectedElements) - 1; i >= 0; i -= 1 {
		e := expectedElements[i]
		trx.Put(storage.Pool.TestData, []byte(e.key), []byte(e.value))
	}

	// other pools must not leak into the range
	trx.Put(storage.Pool.Records, []byte("key-zero"), []byte("other"))

	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestFetchCursor(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	populate(t)

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	second, err := cursor.Fetch(3)
	assert.Nil(t, err, "second fetch")
	third, err := cursor.Fetch(3)
	assert.Nil(t, err, "third fetch")

	assert.Equal(t, 3, len(first), "first count")
	assert.Equal(t, 2, len(second), "second count")
	assert.Equal(t, 0, len(third), "third count")

	all := append(first, second...)
	for i, e := range all {
		assert.Equal(t, expectedElements[i].key, string(e.Key), "%d: key", i)
		assert.Equal(t, expectedElements[i].value, string(e.Value), "%d: value", i)
	}

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestFetchCursorSeek(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	populate(t)

	elements, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-one")).Fetch(10)
	assert.Nil(t, err, "fetch")
	if assert.Equal(t, 3, len(elements), "count") {
		assert.Equal(t, "key-one", string(elements[0].Key), "first key")
	}
}

func TestMapCursor(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	populate(t)

	keys := []string{}
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, len(expectedElements), len(keys), "count")

	stop := fault.ErrNotFound
	n := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error is returned")
	assert.Equal(t, 1, n, "map stops on error")
}

func TestNilCursor(t *testing.T) {
	var cursor *storage.FetchCursor
	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil fetch")
	assert.Equal(t, fault.ErrInvalidCursor, cursor.Map(nil), "nil map")
}
