// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/rpc/ratelimit"
	"github.com/bitmark-inc/txpoold/transactionrecord"
	"github.com/bitmark-inc/txpoold/txpool"
)

// limit the size of a single ready draw
const maximumReadyCount = 100

// Pool - RPC module for pool wide queries
type Pool struct {
	Log     *logger.L
	Limiter *ratelimit.L
}

// PoolUsageReply - per-partition counts
type PoolUsageReply struct {
	Usage txpool.Usage `json:"usage"`
}

// Usage - current pool occupancy
func (p *Pool) Usage(arguments *struct{}, reply *PoolUsageReply) error {

	if err := p.Limiter.Limit(); nil != err {
		return err
	}

	reply.Usage = txpool.GetUsage()
	return nil
}

// PoolReadyArguments - size of the draw
type PoolReadyArguments struct {
	Count int `json:"count"`
}

// PoolReadyReply - transactions in block producer order
type PoolReadyReply struct {
	Transactions []*transactionrecord.Transaction `json:"transactions"`
}

// Ready - draw transactions the way a block producer would
func (p *Pool) Ready(arguments *PoolReadyArguments, reply *PoolReadyReply) error {

	count := arguments.Count
	if err := p.Limiter.LimitN(count); nil != err {
		return err
	}

	p.Log.Debugf("Pool.Ready: %d", count)

	reply.Transactions = txpool.GetReady(count)
	return nil
}

// PoolAllArguments - a filtered query
type PoolAllArguments struct {
	Filter string              `json:"filter"`
	Params txpool.GetAllParams `json:"params"`
}

// PoolAllReply - filter dependent result
type PoolAllReply struct {
	Result interface{} `json:"result"`
}

// All - run a filtered query against the pool
func (p *Pool) All(arguments *PoolAllArguments, reply *PoolAllReply) error {

	if err := p.Limiter.Limit(); nil != err {
		return err
	}

	p.Log.Debugf("Pool.All: %q", arguments.Filter)

	reply.Result = txpool.GetAll(arguments.Filter, arguments.Params)
	return nil
}
