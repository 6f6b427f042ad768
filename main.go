// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// txpoold - transaction pool daemon
//
// keeps the set of unconfirmed transactions, verifies and orders them
// for block production, serves them over JSON RPC and announces them
// over ZeroMQ
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/accountstore"
	"github.com/bitmark-inc/txpoold/configuration"
	"github.com/bitmark-inc/txpoold/publish"
	"github.com/bitmark-inc/txpoold/rpc"
	"github.com/bitmark-inc/txpoold/transaction"
	"github.com/bitmark-inc/txpoold/txpool"
	"github.com/bitmark-inc/txpoold/version"
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 || 0 == len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [start]", program)
	}

	if len(arguments) > 0 && "start" != arguments[0] {
		exitwithstatus.Message("%s: unknown command: %q", program, arguments[0])
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("configuration file: %s", configurationFile)

	if len(options["verbose"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version.Version)
		fmt.Printf("configuration: %s\n", configurationFile)
	}

	// grab lock file or fail
	lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		if os.IsExist(err) {
			exitwithstatus.Message("%s: another instance is already running", program)
		}
		exitwithstatus.Message("%s: PID file: %q creation failed with error: %s", program, masterConfiguration.PidFile, err)
	}
	fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	lockFile.Close()
	defer os.Remove(masterConfiguration.PidFile)

	// account database
	log.Info("initialise accountstore")
	err = accountstore.Initialise(masterConfiguration.DatabasePath())
	if nil != err {
		log.Criticalf("accountstore setup failed with error: %s", err)
		exitwithstatus.Message("%s: accountstore setup failed with error: %s", program, err)
	}
	defer accountstore.Finalise()

	// the pool - depends on accountstore
	log.Info("initialise txpool")
	err = txpool.Initialise(&masterConfiguration.Pool, txpool.Handles{
		Accounts: accountstore.Handle{},
		Logic:    transaction.Handle{},
	})
	if nil != err {
		log.Criticalf("txpool setup failed with error: %s", err)
		exitwithstatus.Message("%s: txpool setup failed with error: %s", program, err)
	}
	defer txpool.Finalise()

	// announcement publisher - drains the bus
	log.Info("initialise publish")
	err = publish.Initialise(&masterConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish setup failed with error: %s", err)
		exitwithstatus.Message("%s: publish setup failed with error: %s", program, err)
	}
	defer publish.Finalise()

	// RPC server
	log.Info("initialise rpc")
	err = rpc.Initialise(&masterConfiguration.ClientRPC, version.Version)
	if nil != err {
		log.Criticalf("rpc setup failed with error: %s", err)
		exitwithstatus.Message("%s: rpc setup failed with error: %s", program, err)
	}
	defer rpc.Finalise()

	log.Info("all initialised")
	if len(options["verbose"]) > 0 {
		fmt.Printf("listening on: %s\n", strings.Join(masterConfiguration.ClientRPC.Listen, " "))
	}

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if len(options["quiet"]) == 0 {
		fmt.Printf("\n%s: shutting down…\n", program)
	}
}
