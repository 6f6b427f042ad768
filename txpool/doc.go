// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txpool - the store of unconfirmed transactions
//
// a transaction submitted to the node passes through three body
// partitions:
//
//   unverified → pending → ready
//
// admission places a record in unverified; the periodic process job
// drives it through the verifier pipeline and the balance check and
// then routes it to pending (multisignature registrations, records
// carrying cosignatures, future dated records) or directly to ready;
// the second phase of the same tick promotes every pending record to
// ready; the block producer
// draws from ready in fee order
//
// ids that fail verification are held in an invalid set so that
// repeated gossip of a bad record is rejected cheaply; the set is
// cleared wholesale on a slow timer
//
// a record is in at most one body partition at any time and every
// state change holds the pool write lock for its full extent
package txpool
