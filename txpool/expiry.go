// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/constants"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// expiryData - the periodic expiry job
type expiryData struct {
	log *logger.L
}

func (e *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	e.log = logger.New("txpool-expiry")
	log := e.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			log.Info("shutting down…")
			break loop
		case <-time.After(globalData.expiryInterval):
			expired := ExpireTransactions()
			if len(expired) > 0 {
				log.Infof("expired %d transactions", len(expired))
			}
		}
	}

	log.Info("stopped")
}

// ExpireTransactions - delete records that have overstayed
//
// scans unverified, pending then ready; the allowed lifetime depends
// on the record: a multisignature registration lives for its declared
// lifetime in hours, a cosigned record gets an extended timeout and
// everything else gets the base timeout
//
// expired ids are returned; they are NOT added to the invalid set so
// an expired record may be admitted again
func ExpireTransactions() []string {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil
	}

	now := time.Now().UTC().Unix()
	expired := []string{}

	for _, p := range []*partition{globalData.unverified, globalData.pending, globalData.ready} {
		for _, tx := range p.items() {
			timeout := timeoutSeconds(tx)
			age := now - tx.ReceivedAt.Unix()
			if age > timeout {
				p.delete(tx.TxId)
				expired = append(expired, tx.TxId)
				globalData.log.Debugf("expire: %s from %s after %d seconds", tx.TxId, p.name, age)
			}
		}
	}
	return expired
}

// hold lock before calling
func timeoutSeconds(tx *transactionrecord.Transaction) int64 {
	if tx.IsMultisignature() && nil != tx.Asset.Multisignature {
		return int64(tx.Asset.Multisignature.Lifetime) * constants.MultisignatureLifetimeUnit
	}
	if tx.HasCosignatures() {
		return globalData.unconfirmedTimeout * constants.SignedTransactionTimeoutFactor
	}
	return globalData.unconfirmedTimeout
}
