// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"math/big"

	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// CheckBalance - the effective balance predicate
//
// the confirmed balance lags behind the pool, so the check projects
// it forward: every pooled record spending from the address debits
// amount plus fee and every pooled send to the address credits its
// amount; the record passes if the projected balance covers its own
// amount plus fee
func CheckBalance(tx *transactionrecord.Transaction, senderAddress string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	return checkBalance(globalData.handles, tx, senderAddress)
}

// hold lock before calling
// all arithmetic in big integers so no sum can overflow
func checkBalance(handles Handles, tx *transactionrecord.Transaction, senderAddress string) error {

	confirmed, err := handles.Accounts.GetBalance(senderAddress)
	if nil != err {
		return err
	}

	poolBalance := big.NewInt(0)
	for _, p := range []*partition{globalData.unverified, globalData.pending, globalData.ready} {
		for _, pooled := range p.items() {
			if pooled.SenderId == senderAddress {
				poolBalance.Sub(poolBalance, new(big.Int).SetUint64(pooled.Amount))
				poolBalance.Sub(poolBalance, new(big.Int).SetUint64(pooled.Fee))
			}
			if pooled.RecipientId == senderAddress && transactionrecord.Send == pooled.TxType {
				poolBalance.Add(poolBalance, new(big.Int).SetUint64(pooled.Amount))
			}
		}
	}

	effective := new(big.Int).SetUint64(confirmed)
	effective.Add(effective, poolBalance)

	cost := new(big.Int).SetUint64(tx.Amount)
	cost.Add(cost, new(big.Int).SetUint64(tx.Fee))

	if effective.Cmp(cost) < 0 {
		globalData.log.Warnf(
			"account %s has insufficient funds: balance %s, needs %s",
			senderAddress,
			transactionrecord.AmountString(effective),
			transactionrecord.AmountString(cost),
		)
		return fault.InsufficientFunds
	}
	return nil
}
