// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/oracled/constants"
	"github.com/bitmark-inc/oracled/fault"
	"github.com/bitmark-inc/oracled/price"
)

type convertResult struct {
	Quote  string `json:"quote"`
	Price  string `json:"price"`
	Rate   uint64 `json:"rate"`
	Tokens uint64 `json:"tokens"`
}

func runConvert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	quote := price.Quote(c.String("quote"))
	if 0 == len(quote) {
		return fault.ErrMalformed
	}
	if len(quote) > constants.MaximumQuoteLength {
		return fault.ErrQuoteTooLong
	}

	value, err := price.Parse(quote, c.String("currency"))
	if nil != err {
		return err
	}

	rate := c.Uint64("rate")
	tokens, err := price.ToTokens(value, rate)
	if nil != err {
		return err
	}

	return printJson(m.w, convertResult{
		Quote:  string(quote),
		Price:  value.String(),
		Rate:   rate,
		Tokens: tokens,
	})
}
