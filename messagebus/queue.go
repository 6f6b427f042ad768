// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"bytes"
	"fmt"
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000 // if specific size is not specified
)

// Message - message to put into a queue
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - structure of a queue item
type Queue struct {
	c    chan Message
	size int
}

// BroadcastQueue - structure of a broadcaster item
type BroadcastQueue struct {
	sync.Mutex
	out   []chan Message
	size  int
	cache map[string]struct{}
}

// the set of all queues
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // to broadcast to other nodes
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// commands that are subject to the announcement cache
var cacheableCommands = map[string]struct{}{
	"transaction": {},
}

// initialise all queues with preset sizes
func init() {
	Bus.Broadcast = &BroadcastQueue{
		out:   make([]chan Message, 0, 10),
		size:  defaultQueueSize,
		cache: make(map[string]struct{}),
	}
	Bus.TestQueue = &Queue{
		c:    make(chan Message, 50),
		size: 50,
	}
}

// Send - send a message to a 1:1 queue
// blocks while the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - release the incoming messages until the queue is empty
func (queue *Queue) Release() {
loop:
	for {
		select {
		case <-queue.c:
		default:
			break loop
		}
	}
}

// Send - broadcast a message to all current listeners
//
// cacheable messages that were already sent are dropped, the cache
// persists until DropCache is called for that message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.Lock()
	defer queue.Unlock()

	if queue.isCached(command, parameters) {
		return
	}

	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	for _, out := range queue.out {
		select {
		case out <- m:
		default: // connected listener is busy, drop the message
		}
	}
}

// Chan - get a new listening channel for the broadcaster
// use size = 0 for the default size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	queue.Lock()
	defer queue.Unlock()

	if size <= 0 {
		size = queue.size
	}
	c := make(chan Message, size)
	queue.out = append(queue.out, c)
	return c
}

// DropCache - remove a message from the announcement cache
// so an identical broadcast can be sent again
func DropCache(message Message) {
	queue := Bus.Broadcast
	queue.Lock()
	defer queue.Unlock()

	if _, ok := cacheableCommands[message.Command]; !ok {
		return
	}
	delete(queue.cache, cacheKey(message.Command, message.Parameters))
}

// hold lock before calling
// check and update the announcement cache
func (queue *BroadcastQueue) isCached(command string, parameters [][]byte) bool {
	if _, ok := cacheableCommands[command]; !ok {
		return false
	}
	key := cacheKey(command, parameters)
	if _, ok := queue.cache[key]; ok {
		return true
	}
	queue.cache[key] = struct{}{}
	return false
}

func cacheKey(command string, parameters [][]byte) string {
	return fmt.Sprintf("%s:%x", command, bytes.Join(parameters, []byte{0x00}))
}
