// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - per-module call gates for the RPC surface
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/txpoold/fault"
)

// a caller throttled longer than this is rejected outright rather
// than parked on a sleeping connection
const maximumDelay = 5 * time.Second

// L - the gate for one RPC module
//
// calls inside the burst pass immediately, calls slightly over it are
// delayed, anything that would be delayed past maximumDelay is
// refused so slow clients cannot pile up server goroutines
type L struct {
	limiter      *rate.Limiter
	maximumCount int
}

// New - create a gate allowing callsPerSecond with the given burst
//
// maximumCount bounds the count argument of LimitN
func New(callsPerSecond rate.Limit, burst int, maximumCount int) *L {
	return &L{
		limiter:      rate.NewLimiter(callsPerSecond, burst),
		maximumCount: maximumCount,
	}
}

// Limit - gate a single call
func (gate *L) Limit() error {
	return gate.LimitN(1)
}

// LimitN - gate a call that draws count items
func (gate *L) LimitN(count int) error {
	if count <= 0 || count > gate.maximumCount {
		// the invalid request still costs one call
		if err := gate.reserve(1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return gate.reserve(count)
}

func (gate *L) reserve(count int) error {
	r := gate.limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.Delay()
	if delay > maximumDelay {
		r.Cancel()
		return fault.RateLimiting
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return nil
}
