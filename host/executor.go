// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/messagebus"
	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/draftd/storage"
	"github.com/bitmark-inc/logger"
)

// EventCommand - message bus command for committed responses
const EventCommand = "event"

// ExecuteFunc - a mutating handler
type ExecuteFunc func(trx storage.Transaction, env Env, info MessageInfo) (*Response, error)

// QueryFunc - a read only handler, returns the encoded result
type QueryFunc func(trx storage.Transaction, env Env) ([]byte, error)

// Clock - source of request time
type Clock func() time.Time

// TransactionSource - begins a new storage transaction
type TransactionSource func() (storage.Transaction, error)

// Executor - runs handlers one at a time
type Executor struct {
	sync.Mutex
	log    *logger.L
	clock  Clock
	begin  TransactionSource
	height uint64
}

// NewExecutor - executor over the database transaction of the storage package
func NewExecutor() *Executor {
	return NewExecutorWith(time.Now, storage.NewDBTransaction)
}

// NewExecutorWith - executor with a specific clock and transaction source
func NewExecutorWith(clock Clock, begin TransactionSource) *Executor {
	return &Executor{
		log:   logger.New("host"),
		clock: clock,
		begin: begin,
	}
}

// Height - number of requests started so far
func (e *Executor) Height() uint64 {
	e.Lock()
	defer e.Unlock()
	return e.height
}

// Execute - run a mutating handler, commit all writes on success,
// discard all writes on failure
func (e *Executor) Execute(kind string, info MessageInfo, f ExecuteFunc) (*Response, error) {
	start := time.Now()
	response, err := e.execute(kind, info, f)
	countRequest(kind, err)
	requestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	return response, err
}

func (e *Executor) execute(kind string, info MessageInfo, f ExecuteFunc) (*Response, error) {
	if !mode.Accepting() {
		return nil, fault.NotAvailableDuringShutdown
	}
	if err := CheckNetwork(info.Sender); nil != err {
		return nil, err
	}

	e.Lock()
	defer e.Unlock()

	env := e.nextEnv()

	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", kind, err)
		return nil, err
	}

	response, err := f(trx, env, info)
	if nil != err {
		trx.Abort()
		e.log.Debugf("%s: sender: %s  aborted: %s", kind, info.Sender, err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("%s: commit error: %s", kind, err)
		return nil, err
	}

	e.log.Debugf("%s: sender: %s  height: %d  committed", kind, info.Sender, env.Block.Height)
	e.emit(env, response)

	return response, nil
}

// Query - run a read only handler, nothing is ever committed
func (e *Executor) Query(kind string, f QueryFunc) ([]byte, error) {
	start := time.Now()
	result, err := e.query(kind, f)
	countRequest(kind, err)
	requestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	return result, err
}

func (e *Executor) query(kind string, f QueryFunc) ([]byte, error) {
	if !mode.Accepting() {
		return nil, fault.NotAvailableDuringShutdown
	}

	e.Lock()
	defer e.Unlock()

	env := Env{
		Block: BlockInfo{
			Height: e.height,
			Time:   e.clock(),
		},
	}

	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", kind, err)
		return nil, err
	}
	defer trx.Abort()

	return f(trx, env)
}

// environment for the next request, must hold lock
func (e *Executor) nextEnv() Env {
	e.height += 1
	return Env{
		Block: BlockInfo{
			Height: e.height,
			Time:   e.clock(),
		},
	}
}

// broadcast the attributes of a committed response
func (e *Executor) emit(env Env, response *Response) {
	if nil == response || 0 == len(response.Attributes) {
		return
	}
	event := Event{
		Height:     env.Block.Height,
		Timestamp:  env.Timestamp(),
		Attributes: response.Attributes,
	}
	packed, err := json.Marshal(event)
	if nil != err {
		e.log.Errorf("event encode error: %s", err)
		return
	}
	messagebus.Bus.Broadcast.Send(EventCommand, packed)
}
