// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single transaction which accumulates a
// LevelDB batch, so one ledger step is written all at once or not at
// all.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. count/nonce  = big endian uint64 (8 bytes)
// 4. account      = packed account bytes (variant ++ public key)
// 5. record id    = bounded byte string
//
// Ledger:
//
//   L ++ "state"               - last committed ledger state
//                                data: height ++ watermark ++ supply ++ price height ++ quote
//
// Records:
//
//   R ++ record id             - registry entries
//                                data: packed record
//
// Nonces:
//
//   N ++ account               - last executed signed submission nonce
//                                data: nonce
//
// Testing:
//   Z ++ key                   - testing data
package storage
