// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package price

// Quote - the bytes received from the feed
type Quote []byte

// String - quote as text
func (quote Quote) String() string {
	return string(quote)
}

// MarshalText - a quote is kept as its original text
func (quote Quote) MarshalText() ([]byte, error) {
	return []byte(quote), nil
}

// UnmarshalText - copy text into a quote
func (quote *Quote) UnmarshalText(s []byte) error {
	*quote = append(Quote{}, s...)
	return nil
}
