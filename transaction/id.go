// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// canonical serialisation of a record for hashing and signing
//
// fields are in fixed order and all signature fields are excluded;
// the first signature is appended separately where a second signature
// has to cover it
type canonicalRecord struct {
	TxType             transactionrecord.TxType `json:"type"`
	Timestamp          int64                    `json:"timestamp"`
	SenderId           string                   `json:"senderId"`
	SenderPublicKey    string                   `json:"senderPublicKey"`
	RequesterPublicKey string                   `json:"requesterPublicKey,omitempty"`
	RecipientId        string                   `json:"recipientId,omitempty"`
	Amount             uint64                   `json:"amount"`
	Fee                uint64                   `json:"fee"`
	Asset              transactionrecord.Asset  `json:"asset,omitempty"`
	Signature          string                   `json:"signature,omitempty"`
}

// SigningDigest - digest covered by the primary and cosignatures
func SigningDigest(tx *transactionrecord.Transaction) [32]byte {
	return digest(tx, false)
}

// SecondSigningDigest - digest covered by the second signature
// includes the primary signature
func SecondSigningDigest(tx *transactionrecord.Transaction) [32]byte {
	return digest(tx, true)
}

// TxId - hex encoded SHA3-256 over the canonical serialisation
func TxId(tx *transactionrecord.Transaction) string {
	d := digest(tx, false)
	return hex.EncodeToString(d[:])
}

func digest(tx *transactionrecord.Transaction, withSignature bool) [32]byte {
	r := canonicalRecord{
		TxType:             tx.TxType,
		Timestamp:          tx.Timestamp,
		SenderId:           tx.SenderId,
		SenderPublicKey:    tx.SenderPublicKey,
		RequesterPublicKey: tx.RequesterPublicKey,
		RecipientId:        tx.RecipientId,
		Amount:             tx.Amount,
		Fee:                tx.Fee,
		Asset:              tx.Asset,
	}
	if withSignature {
		r.Signature = tx.Signature
	}
	data, err := json.Marshal(r)
	if nil != err {
		// canonicalRecord contains no unmarshalable types
		panic("transaction: marshal canonical record: " + err.Error())
	}
	return sha3.Sum256(data)
}
