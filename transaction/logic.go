// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/txpoold/account"
	"github.com/bitmark-inc/txpoold/accountstore"
	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

// Handle - the validation pipeline as an injectable value
type Handle struct{}

// Process - structural checks of a record against its sender account
func (Handle) Process(tx *transactionrecord.Transaction, sender *accountstore.Account, requester *accountstore.Account) error {
	return Process(tx, sender, requester)
}

// ObjectNormalize - canonicalise a record
func (Handle) ObjectNormalize(tx *transactionrecord.Transaction) error {
	return ObjectNormalize(tx)
}

// Verify - check all signatures on a record
func (Handle) Verify(tx *transactionrecord.Transaction, sender *accountstore.Account) error {
	return Verify(tx, sender)
}

// Process - structural checks of a record against its sender account
//
// the requester account is only present when the record carries a
// requesterPublicKey; the caller has already resolved both accounts
func Process(tx *transactionrecord.Transaction, sender *accountstore.Account, requester *accountstore.Account) error {
	if err := tx.Check(); nil != err {
		return err
	}
	if 0 == tx.Fee {
		return fault.InvalidTransactionAmount
	}
	if nil == sender {
		return fault.RequesterNotFound
	}
	if "" != sender.PublicKey && sender.PublicKey != tx.SenderPublicKey {
		return fault.InvalidPublicKey
	}

	if "" != tx.RequesterPublicKey {
		if 0 == len(sender.Multisignatures) {
			return fault.RequesterNotFound
		}
		if nil == requester {
			return fault.RequesterNotFound
		}
		if !memberOf(sender.Multisignatures, tx.RequesterPublicKey) {
			return fault.RequesterNotFound
		}
	}

	if "" != sender.SecondPublicKey && "" == tx.SignSignature {
		return fault.InvalidSignature
	}

	return nil
}

// ObjectNormalize - canonicalise a record in place
//
// hex fields are folded to lower case and the id is recomputed from
// the canonical serialisation; a record arriving with a different id
// is rejected
func ObjectNormalize(tx *transactionrecord.Transaction) error {
	tx.SenderPublicKey = strings.ToLower(tx.SenderPublicKey)
	tx.RequesterPublicKey = strings.ToLower(tx.RequesterPublicKey)
	tx.Signature = strings.ToLower(tx.Signature)
	tx.SignSignature = strings.ToLower(tx.SignSignature)
	for i, s := range tx.Signatures {
		tx.Signatures[i] = strings.ToLower(s)
	}
	if nil != tx.Asset.Multisignature {
		for i, k := range tx.Asset.Multisignature.Keysgroup {
			tx.Asset.Multisignature.Keysgroup[i] = strings.ToLower(k)
		}
	}

	id := TxId(tx)
	if "" != tx.TxId && id != tx.TxId {
		return fault.InvalidTransactionId
	}
	tx.TxId = id
	return nil
}

// Verify - check all signatures on a record
//
// the primary signature is made by the requester when one is present,
// otherwise by the sender; cosignatures must each verify against a
// member of the applicable key group
func Verify(tx *transactionrecord.Transaction, sender *accountstore.Account) error {
	signer := tx.SenderPublicKey
	if "" != tx.RequesterPublicKey {
		signer = tx.RequesterPublicKey
	}

	d := SigningDigest(tx)
	if err := checkOne(signer, d[:], tx.Signature); nil != err {
		return err
	}

	if "" != sender.SecondPublicKey {
		d2 := SecondSigningDigest(tx)
		if err := checkOne(sender.SecondPublicKey, d2[:], tx.SignSignature); nil != err {
			return err
		}
	}

	if tx.HasCosignatures() {
		group := sender.Multisignatures
		if nil != tx.Asset.Multisignature {
			group = keysgroupMembers(tx.Asset.Multisignature.Keysgroup)
		}
		if 0 == len(group) {
			return fault.InvalidSignature
		}
		for _, s := range tx.Signatures {
			if !verifyAny(group, d[:], s) {
				return fault.InvalidSignature
			}
		}
	}

	return nil
}

func checkOne(publicKey string, message []byte, signature string) error {
	acc, err := account.AccountFromHexString(publicKey)
	if nil != err {
		return err
	}
	sig, err := hex.DecodeString(signature)
	if nil != err {
		return fault.InvalidSignature
	}
	return acc.CheckSignature(message, sig)
}

func verifyAny(group []string, message []byte, signature string) bool {
	for _, key := range group {
		if nil == checkOne(key, message, signature) {
			return true
		}
	}
	return false
}

func memberOf(group []string, key string) bool {
	for _, k := range group {
		if k == key {
			return true
		}
	}
	return false
}

// keysgroup entries carry a leading "+"/"-" action marker
func keysgroupMembers(keysgroup []string) []string {
	members := make([]string, 0, len(keysgroup))
	for _, k := range keysgroup {
		members = append(members, strings.TrimLeft(k, "+-"))
	}
	return members
}
