// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC surface of the daemon over TLS
//
// modules: Transaction (Submit, Status), Pool (Usage, Ready, All)
// and Node (Info); every call is rate limited per module
package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/fault"
)

// Configuration - the RPC block of the configuration file
type Configuration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

const defaultMaximumConnections = 100

// globals for the listener
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener *listener.MultiListener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// Initialise - start the RPC listener
func Initialise(configuration *Configuration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("rpc")
	log := globalData.log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		return fault.InvalidListenAddress
	}

	// certificate is created on first run
	if !ensureFileExists(configuration.Certificate) || !ensureFileExists(configuration.PrivateKey) {
		log.Infof("creating self signed certificate: %q", configuration.Certificate)
		err := makeSelfSignedCertificate("rpc", configuration.Certificate, configuration.PrivateKey, nil)
		if nil != err {
			log.Errorf("certificate creation: error: %s", err)
			return err
		}
	}

	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("load keypair: error: %s", err)
		return err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	maximumConnections := configuration.MaximumConnections
	if maximumConnections <= 0 {
		maximumConnections = defaultMaximumConnections
	}
	limiter := listener.NewLimiter(maximumConnections)

	ml, err := listener.NewMultiListener("rpc", configuration.Listen, tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("listen: error: %s", err)
		return err
	}
	globalData.listener = ml

	server := createRPCServer(log, version)
	argument := &serverArgument{
		Log:    log,
		Server: server,
	}

	globalData.listener.Start(argument)

	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC listener
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.listener.Stop()
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
