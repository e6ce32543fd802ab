// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrFetchOne    = fault.FetchError("fetch one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrParseOne    = fault.ParseError("parse one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrValidityOne = fault.ValidityError("validity one")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		fetch    bool
		invalid  bool
		notFound bool
		parse    bool
		process  bool
		validity bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrFetchOne, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrParseOne, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrValidityOne, false, false, false, false, false, false, true},
		{fault.ErrSendFailed, false, true, false, false, false, false, false},
		{fault.ErrMalformed, false, false, false, false, true, false, false},
		{fault.ErrStale, false, false, false, false, false, false, true},
		{fault.ErrAlreadyExists, true, false, false, false, false, false, false},
		{fault.ErrNotFound, false, false, false, true, false, false, false},
		{fault.ErrInsufficientSupply, false, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrFetch(err) != e.fetch {
			t.Errorf("%d: expected 'fetch' == %v for err = %v", i, e.fetch, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrParse(err) != e.parse {
			t.Errorf("%d: expected 'parse' == %v for err = %v", i, e.parse, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrValidity(err) != e.validity {
			t.Errorf("%d: expected 'validity' == %v for err = %v", i, e.validity, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("pool.Get", nil) }, "nil error panicked")

	assert.PanicsWithValue(t, "pool.Get failed with error: database is not set", func() {
		fault.PanicIfError("pool.Get", fault.ErrDatabaseIsNotSet)
	}, "wrong panic message")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "pool.GetN truncated record for: 01", func() {
		fault.Panicf("pool.GetN truncated record for: %x", []byte{1})
	}, "wrong panic message")
}
