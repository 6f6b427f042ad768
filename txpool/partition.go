// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"container/list"

	"github.com/bitmark-inc/txpoold/counter"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// partition - one body partition of the pool
//
// id lookup is O(1) and iteration follows insertion order; the count
// is kept in a counter that clamps at zero
//
// the caller holds the pool lock for all calls
type partition struct {
	name    string
	entries map[string]*list.Element
	order   *list.List // of *transactionrecord.Transaction
	count   counter.Counter
}

func newPartition(name string) *partition {
	return &partition{
		name:    name,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (p *partition) add(tx *transactionrecord.Transaction) {
	if _, ok := p.entries[tx.TxId]; ok {
		return
	}
	p.entries[tx.TxId] = p.order.PushBack(tx)
	p.count.Increment()
}

func (p *partition) delete(txId string) bool {
	e, ok := p.entries[txId]
	if !ok {
		return false
	}
	p.order.Remove(e)
	delete(p.entries, txId)
	p.count.Decrement()
	return true
}

func (p *partition) has(txId string) bool {
	_, ok := p.entries[txId]
	return ok
}

func (p *partition) get(txId string) *transactionrecord.Transaction {
	e, ok := p.entries[txId]
	if !ok {
		return nil
	}
	return e.Value.(*transactionrecord.Transaction)
}

// items - snapshot in insertion order
func (p *partition) items() []*transactionrecord.Transaction {
	txs := make([]*transactionrecord.Transaction, 0, p.order.Len())
	for e := p.order.Front(); nil != e; e = e.Next() {
		txs = append(txs, e.Value.(*transactionrecord.Transaction))
	}
	return txs
}

// ids - snapshot of ids, optionally reversed, truncated from the tail
func (p *partition) ids(reverse bool, limit int) []string {
	ids := make([]string, 0, p.order.Len())
	if reverse {
		for e := p.order.Back(); nil != e; e = e.Prev() {
			ids = append(ids, e.Value.(*transactionrecord.Transaction).TxId)
		}
	} else {
		for e := p.order.Front(); nil != e; e = e.Next() {
			ids = append(ids, e.Value.(*transactionrecord.Transaction).TxId)
		}
	}
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

func (p *partition) size() int {
	return int(p.count.Uint64())
}
