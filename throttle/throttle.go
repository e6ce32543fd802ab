// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package throttle - the on-ledger watermark that limits how often an
// unsigned price submission is accepted
package throttle

import (
	"math"
)

// MaySubmitUnsigned - true if an unsigned submission for height is
// eligible under the current watermark
func MaySubmitUnsigned(watermark uint64, height uint64) bool {
	return height >= watermark
}

// Advance - the watermark after an unsigned submission for height
// has been executed
//
// the result never decreases and saturates at the maximum height
func Advance(watermark uint64, height uint64, interval uint64) uint64 {
	next := height + interval
	if next < height {
		next = math.MaxUint64
	}
	if next < watermark {
		return watermark
	}
	return next
}
