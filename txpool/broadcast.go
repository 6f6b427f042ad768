// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/messagebus"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// rebroadcaster - periodic re-announcement of held transactions
//
// gossip is lossy, so pending and ready records are re-announced on
// an interval; at most releaseLimit records go out per tick to keep
// the burst bounded
type rebroadcaster struct {
	log *logger.L
}

func (r *rebroadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	r.log = logger.New("rebroadcaster")
	log := r.log

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			log.Info("shutting down…")
			break loop
		case <-time.After(globalData.broadcastInterval):
			r.process()
		}
	}

	log.Info("stopped")
}

// re-announce pending and ready transactions
func (r *rebroadcaster) process() {
	log := r.log
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return
	}

	log.Debug("rebroadcasting held transactions…")

	released := 0
	for _, p := range []*partition{globalData.pending, globalData.ready} {
		for _, tx := range p.items() {
			if released >= globalData.releaseLimit {
				return
			}
			broadcastTransaction(tx)
			released++
		}
	}
}

// send one transaction announcement
//
// the announcement cache has to be cleared first or the repeat would
// be suppressed
func broadcastTransaction(tx *transactionrecord.Transaction) {
	packed, err := json.Marshal(tx)
	if nil != err {
		return
	}
	messagebus.DropCache(messagebus.Message{
		Command:    "transaction",
		Parameters: [][]byte{packed},
	})
	messagebus.Bus.Broadcast.Send("transaction", packed)
}
