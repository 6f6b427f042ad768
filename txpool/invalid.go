// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// resetterData - the periodic invalid set reset job
//
// the invalid set only rejects repeated gossip of a bad id, so it is
// cleared wholesale on a slow timer instead of tracking per-id ages
type resetterData struct {
	log *logger.L
}

func (r *resetterData) Run(args interface{}, shutdown <-chan struct{}) {

	r.log = logger.New("txpool-reset")
	log := r.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			log.Info("shutting down…")
			break loop
		case <-time.After(globalData.resetInterval):
			n := ResetInvalidTransactions()
			if n > 0 {
				log.Infof("cleared %d invalid transaction ids", n)
			}
		}
	}

	log.Info("stopped")
}

// ResetInvalidTransactions - empty the invalid set
// returns the number of ids cleared
func ResetInvalidTransactions() int {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0
	}

	n := globalData.invalid.ItemCount()
	globalData.invalid.Flush()
	return n
}
