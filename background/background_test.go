// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/background"
)

type ticker struct {
	ticks    uint64
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	state.finished = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.finished, "first process still running")
	assert.True(t, proc2.finished, "second process still running")
	assert.NotZero(t, atomic.LoadUint64(&proc1.ticks), "first process did not run")
	assert.NotZero(t, atomic.LoadUint64(&proc2.ticks), "second process did not run")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, time.Millisecond)
	p.Stop()
	p.Stop()

	var none *background.T
	none.Stop()
}
