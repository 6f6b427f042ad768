// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"sort"
	"time"

	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// InvalidFilter - sentinel returned by GetAll for an unknown filter
const InvalidFilter = "invalid filter"

// GetAllParams - optional arguments for GetAll
type GetAllParams struct {
	Reverse   bool   `json:"reverse,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Id        string `json:"id,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
}

// TaggedTransaction - a record together with the partition holding it
type TaggedTransaction struct {
	Partition string                         `json:"partition"`
	Tx        *transactionrecord.Transaction `json:"transaction"`
}

// Usage - per-partition record counts
type Usage struct {
	Unverified int `json:"unverified"`
	Pending    int `json:"pending"`
	Ready      int `json:"ready"`
}

// Add - admit records into the unverified partition
//
// each record is checked in order: pool capacity, the invalid set,
// duplicate id in any body partition; the first failure stops the
// batch and is returned
func Add(txs ...*transactionrecord.Transaction) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	for _, tx := range txs {
		if bodySize() >= globalData.storageLimit {
			globalData.log.Warnf("add: %s: pool is full", tx.TxId)
			return fault.PoolIsFull
		}
		if _, ok := globalData.invalid.Get(tx.TxId); ok {
			return fault.TransactionAlreadyInvalid
		}
		if globalData.unverified.has(tx.TxId) || globalData.pending.has(tx.TxId) || globalData.ready.has(tx.TxId) {
			return fault.TransactionAlreadyExists
		}
		tx.ReceivedAt = time.Now().UTC()
		globalData.unverified.add(tx)
		globalData.log.Debugf("add: %s → unverified", tx.TxId)
	}
	return nil
}

// AddReady - place records from the ledger layer directly into ready
//
// any copy already in the pool is discarded first; the whole batch
// shares a single received time; there is no capacity or duplicate
// check as these records must be accepted
func AddReady(txs ...*transactionrecord.Transaction) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	now := time.Now().UTC()
	for _, tx := range txs {
		deleteAll(tx.TxId)
		tx.ReceivedAt = now
		globalData.ready.add(tx)
		globalData.log.Debugf("add ready: %s", tx.TxId)
	}
	return nil
}

// Remove - delete a record wherever it lives
//
// returns the names of the partitions it was removed from; more than
// one name indicates corrupted state and is logged
func Remove(txId string) []string {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil
	}

	removed := deleteAll(txId)
	if len(removed) > 1 {
		globalData.log.Warnf("remove: %s was present in multiple partitions: %v", txId, removed)
	}
	return removed
}

// Get - fetch a record and the partition holding it
func Get(txId string) (*transactionrecord.Transaction, Status) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, StatusNotInPool
	}

	if tx := globalData.unverified.get(txId); nil != tx {
		return tx, StatusUnverified
	}
	if tx := globalData.pending.get(txId); nil != tx {
		return tx, StatusPending
	}
	if tx := globalData.ready.get(txId); nil != tx {
		return tx, StatusReady
	}
	return nil, StatusNotInPool
}

// GetAll - query the pool
//
// partition filters return id lists; sender_id and recipient_id
// return partition tagged records; an unknown filter returns the
// InvalidFilter sentinel rather than an error
func GetAll(filter string, params GetAllParams) interface{} {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return InvalidFilter
	}

	switch filter {
	case "unverified":
		return globalData.unverified.ids(params.Reverse, params.Limit)
	case "pending":
		return globalData.pending.ids(params.Reverse, params.Limit)
	case "ready":
		return globalData.ready.ids(params.Reverse, params.Limit)
	case "sender_id":
		return tagged(func(tx *transactionrecord.Transaction) bool {
			return tx.SenderId == params.Id
		})
	case "recipient_id":
		return tagged(func(tx *transactionrecord.Transaction) bool {
			return tx.RecipientId == params.PublicKey
		})
	default:
		return InvalidFilter
	}
}

// GetReady - snapshot of the ready partition for the block producer
//
// ordering is a hard contract: fee descending then received time
// ascending, truncated to limit
func GetReady(limit int) []*transactionrecord.Transaction {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}

	txs := globalData.ready.items()
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Fee != txs[j].Fee {
			return txs[i].Fee > txs[j].Fee
		}
		return txs[i].ReceivedAt.Before(txs[j].ReceivedAt)
	})
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	return txs
}

// GetUsage - current record counts
func GetUsage() Usage {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Usage{}
	}

	return Usage{
		Unverified: globalData.unverified.size(),
		Pending:    globalData.pending.size(),
		Ready:      globalData.ready.size(),
	}
}

// hold write lock before calling
// remove an id from every partition it lives in
func deleteAll(txId string) []string {
	removed := []string{}
	for _, p := range []*partition{globalData.unverified, globalData.pending, globalData.ready} {
		if p.delete(txId) {
			removed = append(removed, p.name)
		}
	}
	return removed
}

// hold lock before calling
func bodySize() int {
	return globalData.unverified.size() + globalData.pending.size() + globalData.ready.size()
}

// hold lock before calling
func tagged(match func(*transactionrecord.Transaction) bool) []TaggedTransaction {
	result := []TaggedTransaction{}
	for _, p := range []*partition{globalData.unverified, globalData.pending, globalData.ready} {
		for _, tx := range p.items() {
			if match(tx) {
				result = append(result, TaggedTransaction{
					Partition: p.name,
					Tx:        tx,
				})
			}
		}
	}
	return result
}
