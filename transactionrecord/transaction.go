// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"

	"github.com/bitmark-inc/txpoold/fault"
)

// TxType - type code of a transaction record
type TxType uint8

// transaction type codes - values are part of the wire format, do not renumber
const (
	Send            TxType = iota // plain balance transfer
	SecondSignature               // register a second signing key
	Delegate                      // register a delegate name
	Vote                          // cast delegate votes
	Multisignature                // register a multisignature group
)

// limits on multisignature registrations
const (
	MultisignatureMinimumKeys = 2
	MultisignatureMaximumKeys = 15
)

// Epoch - zero point for transaction timestamps
var Epoch = time.Date(2016, time.May, 24, 17, 0, 0, 0, time.UTC)

// String - name of a transaction type
func (t TxType) String() string {
	switch t {
	case Send:
		return "send"
	case SecondSignature:
		return "second-signature"
	case Delegate:
		return "delegate"
	case Vote:
		return "vote"
	case Multisignature:
		return "multisignature"
	default:
		return "*unknown*"
	}
}

// MultisignatureAsset - parameters of a multisignature registration
type MultisignatureAsset struct {
	Min       int      `json:"min"`
	Lifetime  int      `json:"lifetime"`
	Keysgroup []string `json:"keysgroup"`
}

// DelegateAsset - parameters of a delegate registration
type DelegateAsset struct {
	Username string `json:"username"`
}

// SignatureAsset - parameters of a second signature registration
type SignatureAsset struct {
	PublicKey string `json:"publicKey"`
}

// Asset - optional per-type payload of a transaction
type Asset struct {
	Multisignature *MultisignatureAsset `json:"multisignature,omitempty"`
	Delegate       *DelegateAsset       `json:"delegate,omitempty"`
	Signature      *SignatureAsset      `json:"signature,omitempty"`
	Votes          []string             `json:"votes,omitempty"`
}

// Transaction - a single transaction as held in the pool
//
// Signatures carries the cosignatures collected so far for
// multisignature sends; ReceivedAt is stamped by the pool when the
// record is admitted and stamped again when it passes verification
type Transaction struct {
	TxId               string    `json:"id"`
	TxType             TxType    `json:"type"`
	Timestamp          int64     `json:"timestamp"`
	SenderId           string    `json:"senderId"`
	SenderPublicKey    string    `json:"senderPublicKey"`
	RequesterPublicKey string    `json:"requesterPublicKey,omitempty"`
	RecipientId        string    `json:"recipientId,omitempty"`
	Amount             uint64    `json:"amount"`
	Fee                uint64    `json:"fee"`
	Signature          string    `json:"signature"`
	SignSignature      string    `json:"signSignature,omitempty"`
	Signatures         []string  `json:"signatures,omitempty"`
	Asset              Asset     `json:"asset,omitempty"`
	ReceivedAt         time.Time `json:"receivedAt,omitempty"`
}

// HasCosignatures - check if any cosignatures are attached
func (tx *Transaction) HasCosignatures() bool {
	return len(tx.Signatures) > 0
}

// IsMultisignature - check for a multisignature registration record
func (tx *Transaction) IsMultisignature() bool {
	return Multisignature == tx.TxType
}

// TimestampAhead - true if the record claims a creation time later
// than the moment it was accepted
func (tx *Transaction) TimestampAhead() bool {
	if tx.ReceivedAt.IsZero() {
		return false
	}
	return EpochSeconds(tx.ReceivedAt) < tx.Timestamp
}

// TotalCost - amount plus fee
func (tx *Transaction) TotalCost() uint64 {
	return tx.Amount + tx.Fee
}

// Check - structural validation of an incoming record
func (tx *Transaction) Check() error {
	if "" == tx.TxId {
		return fault.InvalidTransactionId
	}
	if "" == tx.SenderPublicKey || "" == tx.SenderId {
		return fault.InvalidPublicKey
	}
	if tx.Timestamp < 0 {
		return fault.InvalidTimestamp
	}
	switch tx.TxType {
	case Send:
		if 0 == tx.Amount || "" == tx.RecipientId {
			return fault.InvalidTransactionAmount
		}
	case SecondSignature, Delegate, Vote:
		if 0 != tx.Amount {
			return fault.InvalidTransactionAmount
		}
	case Multisignature:
		if 0 != tx.Amount {
			return fault.InvalidTransactionAmount
		}
		m := tx.Asset.Multisignature
		if nil == m {
			return fault.MissingParameters
		}
		n := len(m.Keysgroup)
		if n < MultisignatureMinimumKeys || n > MultisignatureMaximumKeys {
			return fault.InvalidCount
		}
		if m.Min < 1 || m.Min > n {
			return fault.InvalidCount
		}
	default:
		return fault.InvalidTransactionId
	}
	return nil
}

// EpochSeconds - convert wall clock time to epoch based seconds
func EpochSeconds(t time.Time) int64 {
	return int64(t.Sub(Epoch) / time.Second)
}

// EpochTime - convert epoch based seconds back to wall clock time
func EpochTime(seconds int64) time.Time {
	return Epoch.Add(time.Duration(seconds) * time.Second)
}
