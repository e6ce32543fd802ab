// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package price - turn a raw quote from the price feed into a token
// amount
//
// a quote is a brace wrapped list of key:value fields, e.g.
//
//   {"ETH":1,"USD":100,"EUR":100}
//
// the value for one currency is parsed as a decimal and converted at
// a fixed exchange rate of fiat units per token, all conversions are
// range checked
package price
