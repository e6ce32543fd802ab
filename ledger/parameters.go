// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/oracled/constants"
)

// Parameters - the tunable constants of price ingestion and issuance
type Parameters struct {
	Currency         string `json:"currency"`
	ExchangeRate     uint64 `json:"exchange_rate,string"`
	UnsignedInterval uint64 `json:"unsigned_interval,string"`
	UnsignedPriority uint64 `json:"unsigned_priority,string"`
	SignedPriority   uint64 `json:"signed_priority,string"`
	Longevity        uint64 `json:"longevity,string"`
	Testing          bool   `json:"testing"`
}

// DefaultParameters - values used when not configured
func DefaultParameters() Parameters {
	return Parameters{
		Currency:         constants.DefaultCurrency,
		ExchangeRate:     constants.DefaultExchangeRate,
		UnsignedInterval: constants.DefaultUnsignedInterval,
		UnsignedPriority: constants.DefaultUnsignedPriority,
		SignedPriority:   constants.DefaultSignedPriority,
		Longevity:        constants.DefaultLongevity,
	}
}
