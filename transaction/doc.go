// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - validation logic for individual records
//
// the pool drives each incoming record through three stages:
//
//   Process         - structural checks against the sender account
//   ObjectNormalize - canonicalise the record, recomputing its id
//   Verify          - cryptographic verification of all signatures
//
// any stage may reject; ObjectNormalize is the only stage that is
// allowed to mutate the record
package transaction
