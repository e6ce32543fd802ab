// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - pool of price submissions waiting for a block
//
// every submission is validated on admission and carries a tag,
// only one submission per tag can be pending so proposals from many
// nodes for the same throttle window collapse into one
package reservoir
