// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountstore

import (
	"encoding/json"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/txpoold/fault"
)

// Account - the confirmed state of a single account
type Account struct {
	Address         string   `json:"address"`
	PublicKey       string   `json:"publicKey"`
	SecondPublicKey string   `json:"secondPublicKey,omitempty"`
	Balance         uint64   `json:"balance"`
	Multisignatures []string `json:"multisignatures,omitempty"`
	MultiMin        int      `json:"multimin,omitempty"`
	MultiLifetime   int      `json:"multilifetime,omitempty"`
}

// GetAccount - fetch the record for an address
//
// returns fault.RequesterNotFound if no such account exists
func GetAccount(address string) (*Account, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	return getAccount(address)
}

// GetAccountByPublicKey - fetch the record owning a public key
func GetAccountByPublicKey(publicKey string) (*Account, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	address, err := globalData.db.Get(storeKey(publicKeyPrefix, publicKey), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.RequesterNotFound
	} else if nil != err {
		return nil, err
	}
	return getAccount(string(address))
}

// SetAccountAndGet - fetch the record for an address, creating an
// empty record if the account was not previously known
func SetAccountAndGet(address string, publicKey string) (*Account, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	account, err := getAccount(address)
	if nil == err {
		if "" == account.PublicKey && "" != publicKey {
			account.PublicKey = publicKey
			if err := putAccount(account); nil != err {
				return nil, err
			}
		}
		return account, nil
	}
	if fault.RequesterNotFound != err {
		return nil, err
	}

	account = &Account{
		Address:   address,
		PublicKey: publicKey,
	}
	if err := putAccount(account); nil != err {
		return nil, err
	}
	return account, nil
}

// PutAccount - store a modified record
func PutAccount(account *Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	return putAccount(account)
}

// GetBalance - confirmed balance of an address, zero if unknown
func GetBalance(address string) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	account, err := getAccount(address)
	if fault.RequesterNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	return account.Balance, nil
}

// hold lock before calling
func getAccount(address string) (*Account, error) {
	data, err := globalData.db.Get(storeKey(accountPrefix, address), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.RequesterNotFound
	} else if nil != err {
		return nil, err
	}

	account := &Account{}
	if err := json.Unmarshal(data, account); nil != err {
		return nil, err
	}
	return account, nil
}

// hold lock before calling
func putAccount(account *Account) error {
	data, err := json.Marshal(account)
	if nil != err {
		return err
	}
	if err := globalData.db.Put(storeKey(accountPrefix, account.Address), data, nil); nil != err {
		return err
	}
	if "" != account.PublicKey {
		key := storeKey(publicKeyPrefix, account.PublicKey)
		if err := globalData.db.Put(key, []byte(account.Address), nil); nil != err {
			return err
		}
	}
	return nil
}

func storeKey(prefix byte, suffix string) []byte {
	key := make([]byte, 0, 1+len(suffix))
	key = append(key, prefix)
	key = append(key, suffix...)
	return key
}
