// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txpoold/fault"
)

func TestErrorClasses(t *testing.T) {
	assert.True(t, fault.IsErrExists(fault.TransactionAlreadyExists), "wrong class")
	assert.True(t, fault.IsErrInvalid(fault.InvalidSignature), "wrong class")
	assert.True(t, fault.IsErrLimit(fault.PoolIsFull), "wrong class")
	assert.True(t, fault.IsErrNotFound(fault.RequesterNotFound), "wrong class")
	assert.True(t, fault.IsErrProcess(fault.MissingParameters), "wrong class")

	assert.False(t, fault.IsErrInvalid(fault.PoolIsFull), "wrong class")
	assert.False(t, fault.IsErrNotFound(nil), "wrong class")
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "transaction pool is full", fault.PoolIsFull.Error(), "wrong text")
	assert.Equal(t, "insufficient funds", fault.InsufficientFunds.Error(), "wrong text")
}
