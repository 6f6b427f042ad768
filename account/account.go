// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ed25519 public keys and their printable addresses
//
// an address is the base58 encoding of: algorithm byte, the raw public
// key, then a four byte SHA3-256 checksum over the preceding bytes
package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/txpoold/fault"
)

// supported key algorithms
const (
	ED25519 byte = 0x01
)

const checksumLength = 4

// Account - an ed25519 public key
type Account struct {
	PublicKey []byte
}

// AccountFromHexString - decode the hex public key form used on the wire
func AccountFromHexString(s string) (*Account, error) {
	key, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.InvalidPublicKey
	}
	return &Account{PublicKey: key}, nil
}

// AccountFromBase58 - decode and checksum verify an address string
func AccountFromBase58(address string) (*Account, error) {
	raw, err := base58.Decode(address)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}
	if len(raw) != 1+ed25519.PublicKeySize+checksumLength {
		return nil, fault.InvalidPublicKey
	}
	if ED25519 != raw[0] {
		return nil, fault.InvalidPublicKey
	}
	payload := raw[:1+ed25519.PublicKeySize]
	digest := sha3.Sum256(payload)
	if !bytes.Equal(digest[:checksumLength], raw[1+ed25519.PublicKeySize:]) {
		return nil, fault.InvalidPublicKey
	}
	return &Account{PublicKey: raw[1 : 1+ed25519.PublicKeySize]}, nil
}

// String - the printable address of the account
func (account *Account) String() string {
	payload := make([]byte, 0, 1+ed25519.PublicKeySize+checksumLength)
	payload = append(payload, ED25519)
	payload = append(payload, account.PublicKey...)
	digest := sha3.Sum256(payload)
	payload = append(payload, digest[:checksumLength]...)
	return base58.Encode(payload)
}

// HexString - the raw public key in hex, as carried on the wire
func (account *Account) HexString() string {
	return hex.EncodeToString(account.PublicKey)
}

// CheckSignature - verify a detached signature over a message
func (account *Account) CheckSignature(message []byte, signature []byte) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
