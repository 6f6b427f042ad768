// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/rpc/ratelimit"
	"github.com/bitmark-inc/txpoold/transaction"
	"github.com/bitmark-inc/txpoold/transactionrecord"
	"github.com/bitmark-inc/txpoold/txpool"
)

// Transaction - RPC module for submitting and querying transactions
type Transaction struct {
	Log     *logger.L
	Limiter *ratelimit.L
}

// TransactionSubmitReply - result of a submission
type TransactionSubmitReply struct {
	TxId   string `json:"txId"`
	Status string `json:"status"`
}

// Submit - place a transaction into the pool
//
// the record enters the unverified partition; verification happens
// on the next processing tick
func (t *Transaction) Submit(arguments *transactionrecord.Transaction, reply *TransactionSubmitReply) error {

	if err := t.Limiter.Limit(); nil != err {
		return err
	}

	tx := *arguments
	if "" == tx.TxId {
		tx.TxId = transaction.TxId(&tx)
	}

	t.Log.Infof("Transaction.Submit: %s", tx.TxId)

	if err := txpool.Add(&tx); nil != err {
		return err
	}

	reply.TxId = tx.TxId
	reply.Status = txpool.StatusUnverified.String()

	return nil
}

// TransactionArguments - select a transaction by id
type TransactionArguments struct {
	TxId string `json:"txId"`
}

// TransactionStatusReply - the pool's view of a transaction
type TransactionStatusReply struct {
	TxId        string                         `json:"txId"`
	Status      string                         `json:"status"`
	Transaction *transactionrecord.Transaction `json:"transaction,omitempty"`
}

// Status - look up a transaction in the pool
func (t *Transaction) Status(arguments *TransactionArguments, reply *TransactionStatusReply) error {

	if err := t.Limiter.Limit(); nil != err {
		return err
	}

	t.Log.Debugf("Transaction.Status: %s", arguments.TxId)

	tx, status := txpool.Get(arguments.TxId)
	reply.TxId = arguments.TxId
	reply.Status = status.String()
	reply.Transaction = tx

	return nil
}
