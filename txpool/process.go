// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/accountstore"
	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/messagebus"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// processorData - the periodic pool processing job
type processorData struct {
	log *logger.L
}

func (p *processorData) Run(args interface{}, shutdown <-chan struct{}) {

	p.log = logger.New("txpool-process")
	log := p.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			log.Info("shutting down…")
			break loop
		case <-time.After(globalData.processInterval):
			ProcessPool()
		}
	}

	log.Info("stopped")
}

// ProcessPool - drive unverified records through verification and
// promote pending records
//
// phase one drains the unverified partition in insertion order: a
// record failing the verifier pipeline is marked invalid, a record
// failing the balance check is dropped, anything else is stamped and
// routed to pending (multisignature registrations, cosigned records,
// future dated records) or ready
//
// phase two moves every pending record to ready
//
// individual failures never stop the drain
func ProcessPool() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	log := globalData.log
	handles := globalData.handles

	// phase one: snapshot so records admitted during the drain wait
	// for the next tick
	for _, tx := range globalData.unverified.items() {
		globalData.unverified.delete(tx.TxId)

		if err := processOne(handles, tx, true); nil != err {
			log.Infof("process: %s verification failed: %s", tx.TxId, err)
			globalData.invalid.Set(tx.TxId, true, cache.NoExpiration)
			continue
		}

		if err := checkBalance(handles, tx, tx.SenderId); nil != err {
			log.Infof("process: %s: %s", tx.TxId, err)
			continue
		}

		tx.ReceivedAt = time.Now().UTC()

		if tx.IsMultisignature() || tx.HasCosignatures() || tx.TimestampAhead() {
			globalData.pending.add(tx)
			log.Debugf("process: %s → pending", tx.TxId)
		} else {
			globalData.ready.add(tx)
			log.Debugf("process: %s → ready", tx.TxId)
		}
	}

	// phase two: promote
	for _, tx := range globalData.pending.items() {
		globalData.pending.delete(tx.TxId)
		globalData.ready.add(tx)
		log.Debugf("promote: %s → ready", tx.TxId)
	}

	return nil
}

// ProcessUnverifiedTransaction - run the verifier pipeline on one
// record outside the periodic drain
func ProcessUnverifiedTransaction(tx *transactionrecord.Transaction, broadcast bool) error {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		return fault.NotInitialised
	}
	handles := globalData.handles
	globalData.RUnlock()

	return processOne(handles, tx, broadcast)
}

// the verifier pipeline
//
// resolve the sender (created on first sight), resolve the requester
// for multisignature group sends, then structural checks, canonical
// form and signature verification; the first failure short-circuits
//
// a record passing the pipeline is announced on the bus
func processOne(handles Handles, tx *transactionrecord.Transaction, broadcast bool) error {

	sender, err := handles.Accounts.SetAccountAndGet(tx.SenderId, tx.SenderPublicKey)
	if nil != err {
		return err
	}

	var requester *accountstore.Account
	if "" != tx.RequesterPublicKey && len(sender.Multisignatures) > 0 {
		requester, err = handles.Accounts.GetAccountByPublicKey(tx.RequesterPublicKey)
		if nil != err {
			return fault.RequesterNotFound
		}
	}

	if err := handles.Logic.Process(tx, sender, requester); nil != err {
		return err
	}
	if err := handles.Logic.ObjectNormalize(tx); nil != err {
		return err
	}
	if err := handles.Logic.Verify(tx, sender); nil != err {
		return err
	}

	if broadcast {
		packed, err := json.Marshal(tx)
		if nil != err {
			return err
		}
		messagebus.Bus.Broadcast.Send("transaction", packed)
	}

	return nil
}
