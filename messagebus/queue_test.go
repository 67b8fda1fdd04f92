// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/messagebus"
)

func receive(t *testing.T, queue <-chan messagebus.Message) messagebus.Message {
	select {
	case m := <-queue:
		return m
	case <-time.After(time.Second):
		t.Error("timed out waiting for message")
	}
	return messagebus.Message{}
}

func TestEveryListenerSeesEveryEvent(t *testing.T) {
	// sent with nothing listening, must not reach later listeners
	messagebus.Bus.Broadcast.Send("dropped")
	time.Sleep(20 * time.Millisecond)

	const listeners = 4
	const events = 25

	queues := make([]<-chan messagebus.Message, listeners)
	for i := range queues {
		queues[i] = messagebus.Bus.Broadcast.Chan(events)
	}

	for i := 0; i < events; i += 1 {
		messagebus.Bus.Broadcast.Send("event", []byte(fmt.Sprintf(`{"height":%d}`, i)))
	}

	var wg sync.WaitGroup
	for n, queue := range queues {
		wg.Add(1)
		go func(n int, queue <-chan messagebus.Message) {
			defer wg.Done()
			defer messagebus.Bus.Broadcast.Release(queue)
			for i := 0; i < events; i += 1 {
				m := receive(t, queue)
				assert.Equal(t, "event", m.Command, "listener %d: wrong command", n)
				assert.Equal(t, [][]byte{[]byte(fmt.Sprintf(`{"height":%d}`, i))}, m.Parameters, "listener %d: out of order", n)
			}
		}(n, queue)
	}
	wg.Wait()
}

func TestSendWithoutParameters(t *testing.T) {
	queue := messagebus.Bus.Broadcast.Chan(1)
	defer messagebus.Bus.Broadcast.Release(queue)

	messagebus.Bus.Broadcast.Send("heart")

	m := receive(t, queue)
	assert.Equal(t, "heart", m.Command, "wrong command")
	assert.NotNil(t, m.Parameters, "nil parameters")
	assert.Len(t, m.Parameters, 0, "unexpected parameters")
}

// a listener that stops reading must not hold up the others once released
func TestReleaseStalledListener(t *testing.T) {
	stalled := messagebus.Bus.Broadcast.Chan(0)
	active := messagebus.Bus.Broadcast.Chan(0)
	defer messagebus.Bus.Broadcast.Release(active)

	received := make(chan string, 2)
	go func() {
		for i := 0; i < 2; i += 1 {
			received <- receive(t, active).Command
		}
	}()

	messagebus.Bus.Broadcast.Send("first")
	messagebus.Bus.Broadcast.Send("second")

	messagebus.Bus.Broadcast.Release(stalled)

	assert.Equal(t, "first", <-received, "wrong first")
	assert.Equal(t, "second", <-received, "wrong second")
}
