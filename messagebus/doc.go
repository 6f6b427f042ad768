// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for all messages
//
// A fixed number of queues are provided.  The Broadcast queue
// duplicates each message to all of its current listeners and keeps a
// cache of recently sent announcements so that identical repeats are
// suppressed.  The remaining queues are simple buffered channels.
package messagebus
