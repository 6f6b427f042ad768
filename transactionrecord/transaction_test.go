// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

func validSend() *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		TxId:            "some-id",
		TxType:          transactionrecord.Send,
		Timestamp:       100,
		SenderId:        "alice",
		SenderPublicKey: "73e7edf1a24ef50fbdea84a0b60fbbd0d5df0b1d2b2cbb069a4e00a7dbdb1d09",
		RecipientId:     "bob",
		Amount:          100,
		Fee:             10,
		Signature:       "aa",
	}
}

func TestTxTypeString(t *testing.T) {
	items := []struct {
		txType   transactionrecord.TxType
		expected string
	}{
		{transactionrecord.Send, "send"},
		{transactionrecord.SecondSignature, "second-signature"},
		{transactionrecord.Delegate, "delegate"},
		{transactionrecord.Vote, "vote"},
		{transactionrecord.Multisignature, "multisignature"},
		{transactionrecord.TxType(200), "*unknown*"},
	}
	for i, item := range items {
		assert.Equal(t, item.expected, item.txType.String(), "%d: wrong name", i)
	}
}

func TestCheckSend(t *testing.T) {
	assert.NoError(t, validSend().Check(), "wrong check")

	tx := validSend()
	tx.TxId = ""
	assert.Equal(t, fault.InvalidTransactionId, tx.Check(), "wrong missing id check")

	tx = validSend()
	tx.SenderPublicKey = ""
	assert.Equal(t, fault.InvalidPublicKey, tx.Check(), "wrong missing key check")

	tx = validSend()
	tx.Timestamp = -1
	assert.Equal(t, fault.InvalidTimestamp, tx.Check(), "wrong timestamp check")

	tx = validSend()
	tx.Amount = 0
	assert.Equal(t, fault.InvalidTransactionAmount, tx.Check(), "wrong amount check")

	tx = validSend()
	tx.RecipientId = ""
	assert.Equal(t, fault.InvalidTransactionAmount, tx.Check(), "wrong recipient check")

	tx = validSend()
	tx.TxType = transactionrecord.TxType(200)
	assert.Equal(t, fault.InvalidTransactionId, tx.Check(), "wrong type check")
}

func TestCheckZeroAmountTypes(t *testing.T) {
	for _, txType := range []transactionrecord.TxType{
		transactionrecord.SecondSignature,
		transactionrecord.Delegate,
		transactionrecord.Vote,
	} {
		tx := validSend()
		tx.TxType = txType
		tx.Amount = 0
		tx.RecipientId = ""
		assert.NoError(t, tx.Check(), "%s: wrong check", txType)

		tx.Amount = 1
		assert.Equal(t, fault.InvalidTransactionAmount, tx.Check(), "%s: wrong amount check", txType)
	}
}

func TestCheckMultisignature(t *testing.T) {
	valid := func() *transactionrecord.Transaction {
		tx := validSend()
		tx.TxType = transactionrecord.Multisignature
		tx.Amount = 0
		tx.RecipientId = ""
		tx.Asset.Multisignature = &transactionrecord.MultisignatureAsset{
			Min:       2,
			Lifetime:  24,
			Keysgroup: []string{"+key-one", "+key-two", "+key-three"},
		}
		return tx
	}

	assert.NoError(t, valid().Check(), "wrong check")

	tx := valid()
	tx.Asset.Multisignature = nil
	assert.Equal(t, fault.MissingParameters, tx.Check(), "wrong missing asset check")

	tx = valid()
	tx.Asset.Multisignature.Keysgroup = []string{"+only-one"}
	assert.Equal(t, fault.InvalidCount, tx.Check(), "wrong group size check")

	tx = valid()
	tx.Asset.Multisignature.Min = 4
	assert.Equal(t, fault.InvalidCount, tx.Check(), "wrong minimum check")

	tx = valid()
	tx.Asset.Multisignature.Min = 0
	assert.Equal(t, fault.InvalidCount, tx.Check(), "wrong minimum check")
}

func TestClassification(t *testing.T) {
	tx := validSend()
	assert.False(t, tx.IsMultisignature(), "wrong classification")
	assert.False(t, tx.HasCosignatures(), "wrong classification")

	tx.TxType = transactionrecord.Multisignature
	assert.True(t, tx.IsMultisignature(), "wrong classification")

	tx.Signatures = []string{"cc"}
	assert.True(t, tx.HasCosignatures(), "wrong classification")
}

func TestTimestampAhead(t *testing.T) {
	now := time.Now().UTC()

	tx := validSend()
	tx.Timestamp = transactionrecord.EpochSeconds(now.Add(time.Hour))
	assert.False(t, tx.TimestampAhead(), "unstamped record cannot be ahead")

	tx.ReceivedAt = now
	assert.True(t, tx.TimestampAhead(), "wrong future record")

	tx.Timestamp = transactionrecord.EpochSeconds(now.Add(-time.Hour))
	assert.False(t, tx.TimestampAhead(), "wrong past record")
}

func TestTotalCost(t *testing.T) {
	tx := validSend()
	assert.Equal(t, uint64(110), tx.TotalCost(), "wrong total")
}

func TestEpochRoundTrip(t *testing.T) {
	assert.Equal(t, int64(0), transactionrecord.EpochSeconds(transactionrecord.Epoch), "wrong zero point")

	at := transactionrecord.Epoch.Add(12345 * time.Second)
	seconds := transactionrecord.EpochSeconds(at)
	assert.Equal(t, int64(12345), seconds, "wrong seconds")
	assert.Equal(t, at, transactionrecord.EpochTime(seconds), "wrong round trip")
}

func TestAmountString(t *testing.T) {
	items := []struct {
		amount   int64
		expected string
	}{
		{0, "0"},
		{1, "0.00000001"},
		{100000000, "1"},
		{123456789, "1.23456789"},
		{120000000, "1.2"},
		{-123456789, "-1.23456789"},
	}
	for i, item := range items {
		s := transactionrecord.AmountString(big.NewInt(item.amount))
		assert.Equal(t, item.expected, s, "%d: wrong rendering", i)
	}
}
