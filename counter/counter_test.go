// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txpoold/counter"
)

func TestCounter(t *testing.T) {
	c := counter.Counter(0)
	assert.True(t, c.IsZero(), "wrong zero state")

	assert.Equal(t, uint64(1), c.Increment(), "wrong increment")
	assert.Equal(t, uint64(2), c.Increment(), "wrong increment")
	assert.Equal(t, uint64(2), c.Uint64(), "wrong value")
	assert.False(t, c.IsZero(), "wrong zero state")

	assert.Equal(t, uint64(1), c.Decrement(), "wrong decrement")
	assert.Equal(t, uint64(0), c.Decrement(), "wrong decrement")
	assert.True(t, c.IsZero(), "wrong zero state")
}

func TestCounterClampsAtZero(t *testing.T) {
	c := counter.Counter(0)

	assert.Equal(t, uint64(0), c.Decrement(), "wrong underflow result")
	assert.True(t, c.IsZero(), "wrong zero state")

	// the clamped decrement leaves no debt behind
	assert.Equal(t, uint64(1), c.Increment(), "wrong increment")
	assert.Equal(t, uint64(1), c.Uint64(), "wrong value")
}

func TestCounterConcurrent(t *testing.T) {
	c := counter.Counter(0)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
			for j := 0; j < 500; j += 1 {
				c.Decrement()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(5000), c.Uint64(), "wrong final value")
}
