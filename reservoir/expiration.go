// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"
)

const expirationCheckInterval = 5 * time.Minute

type cleaner struct {
	log *logger.L
}

func (c *cleaner) Run(args interface{}, shutdown <-chan struct{}) {

	r := args.(*Reservoir)

	c.log.Info("starting…")

	ticker := time.NewTicker(expirationCheckInterval)
	for {
		select {
		case <-ticker.C:
			c.deleteExpiredItems(r, time.Now())
		case <-shutdown:
			ticker.Stop()
			c.log.Info("finished")
			return
		}
	}
}

func (c *cleaner) deleteExpiredItems(r *Reservoir, now time.Time) int {
	r.Lock()
	defer r.Unlock()

	n := 0
	for txId, item := range r.entries {
		if expired(item.expires, now) {
			c.log.Infof("expired: %s", txId)
			r.internalDelete(txId)
			n += 1
		}
	}
	r.pruned.Add(uint64(n))
	return n
}

func expired(exp time.Time, now time.Time) bool {
	return exp.IsZero() || now.Sub(exp) > 0
}
