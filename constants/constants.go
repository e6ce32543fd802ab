// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// bounded byte strings
const (
	MaximumQuoteLength    = 100 // bytes in a price quote
	MaximumIdentityLength = 100 // bytes in a record id
	MaximumNameLength     = 100 // bytes in a record name or company name
	MaximumSignatureBytes = 256 // bytes in a packed signature
	MaximumAccountBytes   = 64  // bytes in a packed account
)

// ledger defaults, overridable from the configuration file
const (
	DefaultExchangeRate     = 5         // fiat units per token
	DefaultUnsignedInterval = 1         // heights between unsigned submissions
	DefaultUnsignedPriority = 1 << 20   // pool priority for unsigned submissions
	DefaultSignedPriority   = 1 << 10   // pool priority for signed submissions
	DefaultLongevity        = 3         // heights a pending submission remains valid
	DefaultInitialSupply    = 1_000_000 // tokens available for issue at genesis
	DefaultCurrency         = "USD"
)

// node timing defaults
const (
	DefaultBlockInterval     = 6 * time.Second
	DefaultFetchTimeout      = 5 * time.Second
	DefaultRequestsPerSecond = 1
	MaximumPendingPerBlock   = 100
)
