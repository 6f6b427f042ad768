// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txpool

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/accountstore"
	"github.com/bitmark-inc/txpoold/background"
	"github.com/bitmark-inc/txpoold/constants"
	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// Configuration - pool settings from the configuration file
// intervals are in milliseconds, the timeout is in seconds
// zero values select the built in defaults
type Configuration struct {
	PoolStorageTransactionsLimit  int `gluamapper:"pool_storage_txs_limit" json:"pool_storage_txs_limit"`
	PoolProcessInterval           int `gluamapper:"pool_process_interval" json:"pool_process_interval"`
	PoolExpiryInterval            int `gluamapper:"pool_expiry_interval" json:"pool_expiry_interval"`
	UnconfirmedTransactionTimeout int `gluamapper:"unconfirmed_transaction_timeout" json:"unconfirmed_transaction_timeout"`
	BroadcastInterval             int `gluamapper:"broadcast_interval" json:"broadcast_interval"`
	ReleaseLimit                  int `gluamapper:"release_limit" json:"release_limit"`
}

// Accounts - the ledger side account access the pool depends on
type Accounts interface {
	SetAccountAndGet(address string, publicKey string) (*accountstore.Account, error)
	GetAccountByPublicKey(publicKey string) (*accountstore.Account, error)
	GetBalance(address string) (uint64, error)
}

// TransactionLogic - the per-record validation pipeline
type TransactionLogic interface {
	Process(tx *transactionrecord.Transaction, sender *accountstore.Account, requester *accountstore.Account) error
	ObjectNormalize(tx *transactionrecord.Transaction) error
	Verify(tx *transactionrecord.Transaction, sender *accountstore.Account) error
}

// Handles - the pool's collaborators, wired at initialisation
type Handles struct {
	Accounts Accounts
	Logic    TransactionLogic
}

// globalData - the pool state
//
// every mutating operation holds the write lock for its full extent
// so a record is observable in at most one body partition
var globalData struct {
	sync.RWMutex
	log     *logger.L
	handles Handles

	unverified *partition
	pending    *partition
	ready      *partition
	invalid    *cache.Cache

	storageLimit       int
	unconfirmedTimeout int64 // seconds
	processInterval    time.Duration
	expiryInterval     time.Duration
	resetInterval      time.Duration
	broadcastInterval  time.Duration
	releaseLimit       int

	// set once during initialise
	background  *background.T
	initialised bool
}

// Initialise - start up the pool and its periodic jobs
func Initialise(configuration *Configuration, handles Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == handles.Accounts || nil == handles.Logic {
		return fault.MissingParameters
	}

	globalData.log = logger.New("txpool")
	globalData.log.Info("starting…")

	globalData.handles = handles
	globalData.unverified = newPartition("unverified")
	globalData.pending = newPartition("pending")
	globalData.ready = newPartition("ready")
	globalData.invalid = cache.New(cache.NoExpiration, 0)

	globalData.storageLimit = configuration.PoolStorageTransactionsLimit
	if globalData.storageLimit <= 0 {
		globalData.storageLimit = constants.PoolStorageTransactionsLimit
	}
	globalData.unconfirmedTimeout = int64(configuration.UnconfirmedTransactionTimeout)
	if globalData.unconfirmedTimeout <= 0 {
		globalData.unconfirmedTimeout = constants.UnconfirmedTransactionTimeout
	}
	globalData.processInterval = millisecondsOr(configuration.PoolProcessInterval, constants.PoolProcessInterval)
	globalData.expiryInterval = millisecondsOr(configuration.PoolExpiryInterval, constants.PoolExpiryInterval)
	globalData.resetInterval = globalData.expiryInterval * constants.InvalidResetFactor
	globalData.broadcastInterval = millisecondsOr(configuration.BroadcastInterval, constants.RebroadcastInterval)
	globalData.releaseLimit = configuration.ReleaseLimit
	if globalData.releaseLimit <= 0 {
		globalData.releaseLimit = constants.RebroadcastReleaseLimit
	}

	globalData.initialised = true

	processes := background.Processes{
		&processorData{},
		&expiryData{},
		&resetterData{},
		&rebroadcaster{},
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the periodic jobs and drop the pool state
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()

	globalData.Lock()
	globalData.unverified = nil
	globalData.pending = nil
	globalData.ready = nil
	globalData.invalid = nil
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func millisecondsOr(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return time.Duration(value) * time.Millisecond
}
