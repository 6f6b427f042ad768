// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accountstore - LevelDB backed store of account records
//
// the confirmed state of each account is held as a JSON record keyed
// by its address; a secondary index maps the raw public key back to
// the address
package accountstore

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/fault"
)

// key prefixes
const (
	accountPrefix   = 'A' // address → account record
	publicKeyPrefix = 'K' // public key → address
)

// globalData - holds the database handle
var globalData struct {
	sync.RWMutex
	log *logger.L
	db  *leveldb.DB

	// set once during initialise
	initialised bool
}

// Initialise - open up the database connection
//
// this must be called before any account is accessed
func Initialise(database string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("accountstore")
	globalData.log.Info("starting…")

	db, err := leveldb.OpenFile(database+"-accounts.leveldb", &ldb_opt.Options{})
	if nil != err {
		return err
	}
	globalData.db = db

	globalData.initialised = true
	return nil
}

// Finalise - close the database connection
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.db.Close()
	globalData.db = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
