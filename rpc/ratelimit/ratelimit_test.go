// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	gate := ratelimit.New(100, 100, 1)
	assert.NoError(t, gate.Limit(), "wrong limit")
}

func TestLimitN(t *testing.T) {
	gate := ratelimit.New(100, 100, 50)

	assert.NoError(t, gate.LimitN(10), "wrong limit")

	assert.Equal(t, fault.InvalidCount, gate.LimitN(0), "wrong zero count")
	assert.Equal(t, fault.InvalidCount, gate.LimitN(51), "wrong excess count")
}

func TestLimitNExhausted(t *testing.T) {
	// burst too small for the request
	gate := ratelimit.New(1, 5, 10)
	assert.Equal(t, fault.RateLimiting, gate.LimitN(6), "wrong exhausted result")
}

func TestLimitOverDelay(t *testing.T) {
	// burst drained; refilling a token takes 100s, far past the delay cap
	gate := ratelimit.New(0.01, 1, 1)
	assert.NoError(t, gate.Limit(), "wrong first call")
	assert.Equal(t, fault.RateLimiting, gate.Limit(), "wrong delayed result")
}
