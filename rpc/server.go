// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/counter"
	"github.com/bitmark-inc/txpoold/rpc/ratelimit"
)

// rate limits per module
const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
	rateLimitPool        = 200
	rateBurstPool        = 100
	rateLimitNode        = 100
	rateBurstNode        = 50
)

// the argument passed to the callback
type serverArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

var connectionCount counter.Counter

// ConnectionCount - number of active RPC connections
func ConnectionCount() uint64 {
	return connectionCount.Uint64()
}

// Callback - handle a single connection from the listener
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	log := serverArgument.Log
	log.Debug("starting…")

	server := serverArgument.Server

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	server.ServeCodec(codec)

	log.Debug("finished")
}

// create the RPC server and register all modules
func createRPCServer(log *logger.L, version string) *rpc.Server {

	start := time.Now().UTC()

	transaction := &Transaction{
		Log:     log,
		Limiter: ratelimit.New(rateLimitTransaction, rateBurstTransaction, 1),
	}

	pool := &Pool{
		Log:     log,
		Limiter: ratelimit.New(rateLimitPool, rateBurstPool, maximumReadyCount),
	}

	node := &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode, 1),
		start:   start,
		version: version,
	}

	server := rpc.NewServer()

	server.Register(transaction)
	server.Register(pool)
	server.Register(node)

	return server
}
