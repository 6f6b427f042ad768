// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the transaction record as submitted to
// and held by the pool
//
// records are interchanged as JSON objects; the id is a hex encoded
// SHA3-256 digest computed over the canonical serialisation of the
// record with its signatures excluded
package transactionrecord
