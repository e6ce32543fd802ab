// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/price"
)

// State - the ledger values threaded through every state transition
type State struct {
	Height      uint64      `json:"height,string"`      // last committed height
	Watermark   uint64      `json:"watermark,string"`   // lowest height accepted for an unsigned price
	Supply      uint64      `json:"supply,string"`      // tokens still available for issue
	PriceHeight uint64      `json:"priceHeight,string"` // height the price was set at
	Price       price.Quote `json:"price"`              // last accepted quote
}

// fixed part of the packed state: four big endian uint64
const stateHeaderLength = 4 * 8

// Genesis - the state of an empty ledger
func Genesis(initialSupply uint64) State {
	return State{
		Supply: initialSupply,
	}
}

// HasPrice - true once a quote has been accepted
func (state State) HasPrice() bool {
	return 0 != len(state.Price)
}

// Issue - take amount from the supply
//
// fails with ErrInsufficientSupply and returns the state unchanged if
// the supply cannot cover the amount
func Issue(state State, amount uint64) (State, error) {
	if amount > state.Supply {
		return state, fault.ErrInsufficientSupply
	}
	state.Supply -= amount
	return state, nil
}

// Pack - height ++ watermark ++ supply ++ price height ++ quote
func (state State) Pack() []byte {
	buffer := make([]byte, stateHeaderLength, stateHeaderLength+len(state.Price))
	binary.BigEndian.PutUint64(buffer[0:8], state.Height)
	binary.BigEndian.PutUint64(buffer[8:16], state.Watermark)
	binary.BigEndian.PutUint64(buffer[16:24], state.Supply)
	binary.BigEndian.PutUint64(buffer[24:32], state.PriceHeight)
	return append(buffer, state.Price...)
}

// UnpackState - reverse of Pack
func UnpackState(buffer []byte) (State, error) {
	if len(buffer) < stateHeaderLength || len(buffer) > stateHeaderLength+constants.MaximumQuoteLength {
		return State{}, fault.ErrInvalidState
	}

	state := State{
		Height:      binary.BigEndian.Uint64(buffer[0:8]),
		Watermark:   binary.BigEndian.Uint64(buffer[8:16]),
		Supply:      binary.BigEndian.Uint64(buffer[16:24]),
		PriceHeight: binary.BigEndian.Uint64(buffer[24:32]),
	}
	if len(buffer) > stateHeaderLength {
		state.Price = append(price.Quote{}, buffer[stateHeaderLength:]...)
	}
	return state, nil
}
