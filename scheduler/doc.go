// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scheduler - fetch a price for every committed block and
// propose it to the pending pool
//
// the scheduler never changes ledger state, only the block producer
// does that when it executes the proposals
package scheduler
