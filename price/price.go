// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package price

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
)

// Price - a parsed non-negative fiat value
type Price = decimal.Decimal

const (
	openDelimiter  = "{"
	closeDelimiter = "}"
	fieldSeparator = ","
	keySeparator   = ":"
)

// bounds on the decimal exponent, rescaling beyond these is costly
// and the value could never convert
const (
	maximumIntegerDigits = 20                           // digits in the largest uint64
	minimumExponent      = -constants.MaximumQuoteLength // finer than any quote can write
)

var maximumTokens = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// spellings that a float parser would accept but are not prices
var nonFinite = map[string]struct{}{
	"nan":      {},
	"inf":      {},
	"infinity": {},
}

// Parse - extract the value for currency from a quote
//
// an empty currency selects the first field
func Parse(quote Quote, currency string) (Price, error) {
	s := strings.TrimSpace(string(quote))
	if len(s) < 2 || !strings.HasPrefix(s, openDelimiter) || !strings.HasSuffix(s, closeDelimiter) {
		return decimal.Zero, fault.ErrMalformed
	}
	s = s[len(openDelimiter) : len(s)-len(closeDelimiter)]

	for _, field := range strings.Split(s, fieldSeparator) {
		n := strings.Index(field, keySeparator)
		if n < 0 {
			return decimal.Zero, fault.ErrMalformed
		}

		key := strings.Trim(strings.TrimSpace(field[:n]), `"`)
		if "" != currency && key != currency {
			continue
		}
		return parseValue(strings.TrimSpace(field[n+len(keySeparator):]))
	}

	return decimal.Zero, fault.ErrMalformed
}

func parseValue(value string) (Price, error) {
	if _, ok := nonFinite[strings.ToLower(strings.TrimLeft(value, "+-"))]; ok {
		return decimal.Zero, fault.ErrOutOfRange
	}

	d, err := decimal.NewFromString(value)
	if nil != err {
		return decimal.Zero, fault.ErrNotNumeric
	}
	if !inRange(d) {
		return decimal.Zero, fault.ErrOutOfRange
	}
	return d, nil
}

// non-negative with an exponent that can be rescaled cheaply
func inRange(d Price) bool {
	if d.Sign() < 0 {
		return false
	}
	exponent := int(d.Exponent())
	if exponent < minimumExponent {
		return false
	}
	return d.NumDigits()+exponent <= maximumIntegerDigits
}

// ToTokens - convert a price to tokens at rate fiat units per token
//
// the price is floored and then integer divided by the rate
func ToTokens(value Price, rate uint64) (uint64, error) {
	if 0 == rate || !inRange(value) {
		return 0, fault.ErrOutOfRange
	}

	whole := value.Floor()
	if whole.GreaterThan(maximumTokens) {
		return 0, fault.ErrOutOfRange
	}
	return whole.BigInt().Uint64() / rate, nil
}

// Convert - parse a quote and convert it to tokens
func Convert(quote Quote, currency string, rate uint64) (uint64, error) {
	value, err := Parse(quote, currency)
	if nil != err {
		return 0, err
	}
	return ToTokens(value, rate)
}
