// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - deliver each message to every listener
type BroadcastQueue struct {
	sync.RWMutex
	in        chan Message
	listeners []chan Message
}

// Bus - all queues
type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - the global set of queues
var Bus = busses{
	Broadcast: newBroadcastQueue(),
}

func newBroadcastQueue() *BroadcastQueue {
	queue := &BroadcastQueue{
		in:        make(chan Message, queueSize),
		listeners: make([]chan Message, 0, 10),
	}
	go queue.distribute()
	return queue
}

// Send - queue a message for all current listeners
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	if nil == parameters {
		parameters = [][]byte{}
	}
	queue.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - register a new listener
//
// size is the listener's buffer, zero gives an unbuffered channel
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()
	return c
}

// Release - unregister a listener
func (queue *BroadcastQueue) Release(c <-chan Message) {

	// discard anything the distributor is blocked on sending
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-c:
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	queue.Lock()
	defer queue.Unlock()
	for i, l := range queue.listeners {
		if c == (<-chan Message)(l) {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			return
		}
	}
}

// copy each incoming message to every listener
func (queue *BroadcastQueue) distribute() {
	for m := range queue.in {
		queue.RLock()
		for _, l := range queue.listeners {
			l <- m
		}
		queue.RUnlock()
	}
}
