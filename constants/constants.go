// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the time an unconfirmed transaction may stay in the pool
const (
	UnconfirmedTransactionTimeout = 10800 // seconds

	// signed multisignature sends live longer
	SignedTransactionTimeoutFactor = 8

	// lifetime of a multisignature registration is given in hours
	MultisignatureLifetimeUnit = 3600 // seconds
)

// default intervals for the periodic pool jobs
const (
	PoolProcessInterval = 3 * time.Second
	PoolExpiryInterval  = 30 * time.Second

	// invalid set reset runs at PoolExpiryInterval times this factor
	InvalidResetFactor = 10
)

// default limits
const (
	PoolStorageTransactionsLimit = 10000
	RebroadcastInterval          = 5 * time.Second
	RebroadcastReleaseLimit      = 25
)
