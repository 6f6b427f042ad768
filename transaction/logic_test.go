// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txpoold/account"
	"github.com/bitmark-inc/txpoold/accountstore"
	"github.com/bitmark-inc/txpoold/fault"
	"github.com/bitmark-inc/txpoold/transaction"
	"github.com/bitmark-inc/txpoold/transactionrecord"
)

type signingKey struct {
	address    string
	publicKey  string
	privateKey ed25519.PrivateKey
}

func makeKey(t *testing.T) *signingKey {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err, "wrong key generation")

	acc := &account.Account{PublicKey: publicKey}
	return &signingKey{
		address:    acc.String(),
		publicKey:  acc.HexString(),
		privateKey: privateKey,
	}
}

func (k *signingKey) sign(digest [32]byte) string {
	return hex.EncodeToString(ed25519.Sign(k.privateKey, digest[:]))
}

// a fully signed send with a correct id
func signedSend(t *testing.T, key *signingKey) *transactionrecord.Transaction {
	tx := &transactionrecord.Transaction{
		TxType:          transactionrecord.Send,
		Timestamp:       transactionrecord.EpochSeconds(time.Now().UTC()),
		SenderId:        key.address,
		SenderPublicKey: key.publicKey,
		RecipientId:     "recipient",
		Amount:          100,
		Fee:             10,
	}
	tx.Signature = key.sign(transaction.SigningDigest(tx))
	tx.TxId = transaction.TxId(tx)
	return tx
}

func senderAccount(key *signingKey) *accountstore.Account {
	return &accountstore.Account{
		Address:   key.address,
		PublicKey: key.publicKey,
	}
}

func TestTxIdDeterministic(t *testing.T) {
	key := makeKey(t)
	tx := signedSend(t, key)

	assert.Equal(t, transaction.TxId(tx), transaction.TxId(tx), "wrong determinism")

	// the id covers the payload but not the signatures
	altered := *tx
	altered.Amount += 1
	assert.NotEqual(t, transaction.TxId(tx), transaction.TxId(&altered), "wrong payload coverage")

	resigned := *tx
	resigned.Signature = "00"
	assert.Equal(t, transaction.TxId(tx), transaction.TxId(&resigned), "wrong signature exclusion")
}

func TestObjectNormalize(t *testing.T) {
	key := makeKey(t)
	tx := signedSend(t, key)
	expected := tx.TxId

	// upper case wire forms fold back to the same id
	tx.Signature = hexUpper(tx.Signature)
	tx.TxId = ""
	assert.NoError(t, transaction.ObjectNormalize(tx), "wrong normalize")
	assert.Equal(t, expected, tx.TxId, "wrong recomputed id")
	assert.Equal(t, key.sign(transaction.SigningDigest(tx)), tx.Signature, "wrong signature folding")
}

func TestObjectNormalizeRejectsForgedId(t *testing.T) {
	key := makeKey(t)
	tx := signedSend(t, key)

	tx.TxId = "deadbeef"
	err := transaction.ObjectNormalize(tx)
	assert.Equal(t, fault.InvalidTransactionId, err, "wrong forged id result")
}

func TestProcess(t *testing.T) {
	key := makeKey(t)
	tx := signedSend(t, key)
	sender := senderAccount(key)

	assert.NoError(t, transaction.Process(tx, sender, nil), "wrong process")

	// a zero fee never passes
	free := signedSend(t, key)
	free.Fee = 0
	free.TxId = transaction.TxId(free)
	assert.Equal(t, fault.InvalidTransactionAmount, transaction.Process(free, sender, nil), "wrong fee check")

	// the stored key binds the sender id
	other := makeKey(t)
	stolen := signedSend(t, other)
	stolen.SenderId = key.address
	stolen.TxId = transaction.TxId(stolen)
	assert.Equal(t, fault.InvalidPublicKey, transaction.Process(stolen, sender, nil), "wrong key binding")

	// a registered second key demands a second signature
	guarded := senderAccount(key)
	guarded.SecondPublicKey = makeKey(t).publicKey
	assert.Equal(t, fault.InvalidSignature, transaction.Process(tx, guarded, nil), "wrong second signature check")
}

func TestProcessRequester(t *testing.T) {
	key := makeKey(t)
	requesterKey := makeKey(t)

	tx := signedSend(t, key)
	tx.RequesterPublicKey = requesterKey.publicKey
	tx.TxId = transaction.TxId(tx)

	// sender without a key group cannot be spent from by a requester
	assert.Equal(t, fault.RequesterNotFound,
		transaction.Process(tx, senderAccount(key), senderAccount(requesterKey)),
		"wrong group check")

	group := senderAccount(key)
	group.Multisignatures = []string{requesterKey.publicKey}

	assert.Equal(t, fault.RequesterNotFound,
		transaction.Process(tx, group, nil),
		"wrong missing requester check")

	assert.NoError(t,
		transaction.Process(tx, group, senderAccount(requesterKey)),
		"wrong process")

	// a requester outside the group is rejected
	outsider := makeKey(t)
	tx.RequesterPublicKey = outsider.publicKey
	tx.TxId = transaction.TxId(tx)
	assert.Equal(t, fault.RequesterNotFound,
		transaction.Process(tx, group, senderAccount(outsider)),
		"wrong membership check")
}

func TestVerify(t *testing.T) {
	key := makeKey(t)
	tx := signedSend(t, key)
	sender := senderAccount(key)

	assert.NoError(t, transaction.Verify(tx, sender), "wrong verify")

	forged := signedSend(t, key)
	forged.Amount += 1
	forged.TxId = transaction.TxId(forged)
	assert.Equal(t, fault.InvalidSignature, transaction.Verify(forged, sender), "wrong forgery result")
}

func TestVerifySecondSignature(t *testing.T) {
	key := makeKey(t)
	secondKey := makeKey(t)

	tx := signedSend(t, key)
	tx.SignSignature = secondKey.sign(transaction.SecondSigningDigest(tx))

	sender := senderAccount(key)
	sender.SecondPublicKey = secondKey.publicKey
	assert.NoError(t, transaction.Verify(tx, sender), "wrong verify")

	// the second signature covers the first
	tampered := *tx
	tampered.SignSignature = secondKey.sign(transaction.SigningDigest(&tampered))
	assert.Equal(t, fault.InvalidSignature, transaction.Verify(&tampered, sender), "wrong coverage check")
}

func TestVerifyRequesterSigns(t *testing.T) {
	key := makeKey(t)
	requesterKey := makeKey(t)

	tx := signedSend(t, key)
	tx.RequesterPublicKey = requesterKey.publicKey
	tx.Signature = requesterKey.sign(transaction.SigningDigest(tx))
	tx.TxId = transaction.TxId(tx)

	sender := senderAccount(key)
	sender.Multisignatures = []string{requesterKey.publicKey}
	assert.NoError(t, transaction.Verify(tx, sender), "wrong verify")

	// the sender's own signature no longer counts
	tx.Signature = key.sign(transaction.SigningDigest(tx))
	assert.Equal(t, fault.InvalidSignature, transaction.Verify(tx, sender), "wrong signer selection")
}

func TestVerifyCosignatures(t *testing.T) {
	key := makeKey(t)
	memberOne := makeKey(t)
	memberTwo := makeKey(t)

	tx := signedSend(t, key)
	sender := senderAccount(key)
	sender.Multisignatures = []string{memberOne.publicKey, memberTwo.publicKey}

	d := transaction.SigningDigest(tx)
	tx.Signatures = []string{memberOne.sign(d), memberTwo.sign(d)}
	assert.NoError(t, transaction.Verify(tx, sender), "wrong verify")

	// a cosignature from outside the group fails
	outsider := makeKey(t)
	tx.Signatures = []string{memberOne.sign(d), outsider.sign(d)}
	assert.Equal(t, fault.InvalidSignature, transaction.Verify(tx, sender), "wrong group check")
}

func TestVerifyKeysgroupCosignatures(t *testing.T) {
	key := makeKey(t)
	memberOne := makeKey(t)
	memberTwo := makeKey(t)

	// a registration carries its own key group, marked with actions
	tx := &transactionrecord.Transaction{
		TxType:          transactionrecord.Multisignature,
		Timestamp:       transactionrecord.EpochSeconds(time.Now().UTC()),
		SenderId:        key.address,
		SenderPublicKey: key.publicKey,
		Fee:             10,
		Asset: transactionrecord.Asset{
			Multisignature: &transactionrecord.MultisignatureAsset{
				Min:      2,
				Lifetime: 24,
				Keysgroup: []string{
					"+" + memberOne.publicKey,
					"+" + memberTwo.publicKey,
				},
			},
		},
	}
	tx.Signature = key.sign(transaction.SigningDigest(tx))
	tx.TxId = transaction.TxId(tx)

	d := transaction.SigningDigest(tx)
	tx.Signatures = []string{memberOne.sign(d), memberTwo.sign(d)}

	assert.NoError(t, transaction.Verify(tx, senderAccount(key)), "wrong verify")
}

func hexUpper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'f' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}
