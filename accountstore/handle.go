// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountstore

// Handle - access the store through an interface value
type Handle struct{}

// GetAccount - fetch the record for an address
func (Handle) GetAccount(address string) (*Account, error) {
	return GetAccount(address)
}

// GetAccountByPublicKey - fetch the record owning a public key
func (Handle) GetAccountByPublicKey(publicKey string) (*Account, error) {
	return GetAccountByPublicKey(publicKey)
}

// SetAccountAndGet - fetch or create the record for an address
func (Handle) SetAccountAndGet(address string, publicKey string) (*Account, error) {
	return SetAccountAndGet(address, publicKey)
}

// GetBalance - confirmed balance of an address
func (Handle) GetBalance(address string) (uint64, error) {
	return GetBalance(address)
}
