// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/txpoold/messagebus"
)

func receive(t *testing.T, queue <-chan messagebus.Message) *messagebus.Message {
	select {
	case message := <-queue:
		return &message
	case <-time.After(time.Second):
		assert.Fail(t, "no message received")
		return nil
	}
}

func assertSilent(t *testing.T, queue <-chan messagebus.Message) {
	select {
	case message := <-queue:
		assert.Fail(t, "unexpected message", "command: %q", message.Command)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestQueueSendReceive(t *testing.T) {
	messagebus.Bus.TestQueue.Release()

	messagebus.Bus.TestQueue.Send("test", []byte("one"), []byte("two"))

	message := receive(t, messagebus.Bus.TestQueue.Chan())
	if nil != message {
		assert.Equal(t, "test", message.Command, "wrong command")
		assert.Equal(t, [][]byte{[]byte("one"), []byte("two")}, message.Parameters, "wrong parameters")
	}
}

func TestQueueRelease(t *testing.T) {
	messagebus.Bus.TestQueue.Send("drop", []byte("a"))
	messagebus.Bus.TestQueue.Send("drop", []byte("b"))
	messagebus.Bus.TestQueue.Release()

	assertSilent(t, messagebus.Bus.TestQueue.Chan())
}

func TestBroadcastFanOut(t *testing.T) {
	one := messagebus.Bus.Broadcast.Chan(5)
	two := messagebus.Bus.Broadcast.Chan(5)

	messagebus.Bus.Broadcast.Send("peer", []byte("fan-out"))

	for _, queue := range []<-chan messagebus.Message{one, two} {
		message := receive(t, queue)
		if nil != message {
			assert.Equal(t, "peer", message.Command, "wrong command")
			assert.Equal(t, [][]byte{[]byte("fan-out")}, message.Parameters, "wrong parameters")
		}
	}
}

func TestBroadcastAnnouncementCache(t *testing.T) {
	queue := messagebus.Bus.Broadcast.Chan(5)

	// first announcement goes out, the identical repeat is suppressed
	messagebus.Bus.Broadcast.Send("transaction", []byte("cached-payload"))
	receive(t, queue)

	messagebus.Bus.Broadcast.Send("transaction", []byte("cached-payload"))
	assertSilent(t, queue)

	// dropping the cache entry lets the announcement repeat
	messagebus.DropCache(messagebus.Message{
		Command:    "transaction",
		Parameters: [][]byte{[]byte("cached-payload")},
	})
	messagebus.Bus.Broadcast.Send("transaction", []byte("cached-payload"))
	receive(t, queue)
}

func TestBroadcastUncachedCommand(t *testing.T) {
	queue := messagebus.Bus.Broadcast.Chan(5)

	// only announcements are cached, other commands always repeat
	messagebus.Bus.Broadcast.Send("peer", []byte("repeat"))
	messagebus.Bus.Broadcast.Send("peer", []byte("repeat"))

	receive(t, queue)
	receive(t, queue)
}
