// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/txpoold/account"
	"github.com/bitmark-inc/txpoold/fault"
)

func TestAddressRoundTrip(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err, "wrong key generation")

	acc := &account.Account{PublicKey: publicKey}
	address := acc.String()

	decoded, err := account.AccountFromBase58(address)
	assert.NoError(t, err, "wrong decode")
	assert.Equal(t, acc.PublicKey, decoded.PublicKey, "wrong key")
	assert.Equal(t, address, decoded.String(), "wrong round trip")
}

func TestAddressChecksum(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err, "wrong key generation")

	address := (&account.Account{PublicKey: publicKey}).String()

	// flip the final character to break the checksum
	last := address[len(address)-1]
	flip := byte('2')
	if last == flip {
		flip = '3'
	}
	corrupted := address[:len(address)-1] + string(flip)

	_, err = account.AccountFromBase58(corrupted)
	assert.Equal(t, fault.InvalidPublicKey, err, "wrong checksum result")
}

func TestAccountFromBase58Invalid(t *testing.T) {
	for i, address := range []string{
		"",
		"0OIl",      // not base58
		"shortness", // wrong length
	} {
		_, err := account.AccountFromBase58(address)
		assert.Equal(t, fault.InvalidPublicKey, err, "%d: wrong result", i)
	}
}

func TestAccountFromHexString(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err, "wrong key generation")

	s := hex.EncodeToString(publicKey)
	acc, err := account.AccountFromHexString(s)
	assert.NoError(t, err, "wrong decode")
	assert.Equal(t, []byte(publicKey), acc.PublicKey, "wrong key")
	assert.Equal(t, s, acc.HexString(), "wrong round trip")

	_, err = account.AccountFromHexString("zz")
	assert.Equal(t, fault.InvalidPublicKey, err, "wrong hex result")

	_, err = account.AccountFromHexString("00ff")
	assert.Equal(t, fault.InvalidPublicKey, err, "wrong length result")
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(t, err, "wrong key generation")

	acc := &account.Account{PublicKey: publicKey}
	message := []byte("message to sign")
	signature := ed25519.Sign(privateKey, message)

	assert.NoError(t, acc.CheckSignature(message, signature), "wrong verify")

	assert.Equal(t, fault.InvalidSignature,
		acc.CheckSignature([]byte("different message"), signature),
		"wrong forgery result")

	assert.Equal(t, fault.InvalidSignature,
		acc.CheckSignature(message, signature[:10]),
		"wrong length result")
}
