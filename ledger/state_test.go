// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/ledger"
	"github.com/bitmark-inc/oracled/price"
)

func TestIssue(t *testing.T) {
	state := ledger.Genesis(1000000)

	issued, err := ledger.Issue(state, 20)
	assert.Nil(t, err, "issue")
	assert.Equal(t, uint64(999980), issued.Supply, "supply after issue")
	assert.Equal(t, uint64(1000000), state.Supply, "original state unchanged")

	all, err := ledger.Issue(issued, issued.Supply)
	assert.Nil(t, err, "issue everything")
	assert.Equal(t, uint64(0), all.Supply, "supply exhausted")
}

func TestIssueInsufficientSupply(t *testing.T) {
	state := ledger.Genesis(10)

	after, err := ledger.Issue(state, 11)
	assert.Equal(t, fault.ErrInsufficientSupply, err, "over issue")
	assert.Equal(t, state, after, "state unchanged")
}

func TestStatePack(t *testing.T) {
	state := ledger.State{
		Height:      12,
		Watermark:   13,
		Supply:      999980,
		PriceHeight: 11,
		Price:       price.Quote("{USD:100}"),
	}

	packed := state.Pack()
	assert.Equal(t, 32+len(state.Price), len(packed), "packed length")

	unpacked, err := ledger.UnpackState(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, state, unpacked, "round trip")
	assert.True(t, unpacked.HasPrice(), "has price")

	empty, err := ledger.UnpackState(ledger.Genesis(5).Pack())
	assert.Nil(t, err, "unpack genesis")
	assert.False(t, empty.HasPrice(), "genesis has no price")
	assert.Equal(t, uint64(5), empty.Supply, "genesis supply")
}

func TestUnpackStateInvalid(t *testing.T) {
	_, err := ledger.UnpackState([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidState, err, "truncated")

	_, err = ledger.UnpackState(make([]byte, 32+101))
	assert.Equal(t, fault.ErrInvalidState, err, "oversize quote")
}
