// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/rpc/ratelimit"
	"github.com/bitmark-inc/txpoold/txpool"
)

// Node - RPC module for node information
type Node struct {
	Log     *logger.L
	Limiter *ratelimit.L
	start   time.Time
	version string
}

// InfoArguments - empty
type InfoArguments struct{}

// InfoReply - some information about this node
type InfoReply struct {
	Version string       `json:"version"`
	Uptime  string       `json:"uptime"`
	RPCs    uint64       `json:"rpcs"`
	Usage   txpool.Usage `json:"usage"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := node.Limiter.Limit(); nil != err {
		return err
	}

	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.RPCs = connectionCount.Uint64()
	reply.Usage = txpool.GetUsage()

	return nil
}
