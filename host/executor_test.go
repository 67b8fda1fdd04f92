// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/chain"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/messagebus"
	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/draftd/storage"
	"github.com/bitmark-inc/draftd/storage/mocks"
)

var sender, _ = account.AccountFromBase58("eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2")

var testTime = time.Unix(1571234567, 0)

func fixedClock() time.Time {
	return testTime
}

func setupExecutor(t *testing.T) (*host.Executor, *mocks.MockTransaction, *mocks.MockHandle, *gomock.Controller) {
	ctl := gomock.NewController(t)
	trx := mocks.NewMockTransaction(ctl)
	pool := mocks.NewMockHandle(ctl)
	begin := func() (storage.Transaction, error) {
		return trx, nil
	}
	return host.NewExecutorWith(fixedClock, begin), trx, pool, ctl
}

func TestExecuteCommits(t *testing.T) {
	executor, trx, pool, ctl := setupExecutor(t)
	defer ctl.Finish()

	gomock.InOrder(
		trx.EXPECT().Put(pool, []byte("k"), []byte("v")),
		trx.EXPECT().Commit().Return(nil),
	)

	response, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		assert.Equal(t, testTime, env.Block.Time, "wrong time")
		assert.Equal(t, uint64(1), env.Block.Height, "wrong height")
		assert.True(t, sender.Equal(info.Sender), "wrong sender")
		trx.Put(pool, []byte("k"), []byte("v"))
		return host.NewResponse().AddAttribute("action", "test"), nil
	})
	assert.Nil(t, err, "execute error")

	action, ok := response.Attribute("action")
	assert.True(t, ok, "missing action")
	assert.Equal(t, "test", action, "wrong action")
	assert.Equal(t, uint64(1), executor.Height(), "wrong height")
}

func TestExecuteAbortsOnError(t *testing.T) {
	executor, trx, pool, ctl := setupExecutor(t)
	defer ctl.Finish()

	failure := errors.New("handler failed")

	gomock.InOrder(
		trx.EXPECT().Put(pool, []byte("k"), []byte("v")),
		trx.EXPECT().Abort(),
	)
	trx.EXPECT().Commit().Times(0)

	response, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		trx.Put(pool, []byte("k"), []byte("v"))
		return nil, failure
	})
	assert.Equal(t, failure, err, "wrong error")
	assert.Nil(t, response, "response on failure")
}

func TestExecuteCommitFailure(t *testing.T) {
	executor, trx, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	failure := fault.NewStorageError("commit", errors.New("disk full"))
	trx.EXPECT().Commit().Return(failure)

	response, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return host.NewResponse(), nil
	})
	assert.Equal(t, failure, err, "wrong error")
	assert.Nil(t, response, "response on failure")
}

func TestExecuteBeginFailure(t *testing.T) {
	executor := host.NewExecutorWith(fixedClock, func() (storage.Transaction, error) {
		return nil, fault.TransactionInUse
	})

	called := false
	_, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		called = true
		return host.NewResponse(), nil
	})
	assert.Equal(t, fault.TransactionInUse, err, "wrong error")
	assert.False(t, called, "handler called without transaction")
}

func TestExecuteMissingSender(t *testing.T) {
	executor, _, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	_, err := executor.Execute("test", host.MessageInfo{}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		t.Error("handler called without sender")
		return nil, nil
	})
	assert.Equal(t, fault.MissingIdentity, err, "wrong error")
}

func TestExecuteWrongNetwork(t *testing.T) {
	executor, trx, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	live, _ := account.NewED25519(sender.PublicKeyBytes(), false)

	_, err := executor.Execute("test", host.MessageInfo{Sender: live}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		t.Error("handler called with live sender on local chain")
		return nil, nil
	})
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "live sender accepted")

	// switch to the live chain
	_ = mode.Finalise()
	assert.Nil(t, mode.Initialise(chain.Bitmark), "initialise error")
	mode.Set(mode.Normal)
	defer func() {
		_ = mode.Finalise()
		_ = mode.Initialise(chain.Local)
		mode.Set(mode.Normal)
	}()

	_, err = executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		t.Error("handler called with testnet sender on live chain")
		return nil, nil
	})
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "testnet sender accepted")
	assert.True(t, fault.IsErrInvalid(err), "not an invalid error")

	trx.EXPECT().Commit().Return(nil)

	_, err = executor.Execute("test", host.MessageInfo{Sender: live}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return host.NewResponse(), nil
	})
	assert.Nil(t, err, "live sender refused on live chain")
}

func TestEnvTimestamp(t *testing.T) {
	tests := []struct {
		time      time.Time
		timestamp uint64
	}{
		{testTime, uint64(testTime.Unix())},
		{time.Unix(0, 0), 0},
		{time.Unix(1, 999999999), 1},
		{time.Unix(-1, 0), 0},
		{time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for i, test := range tests {
		env := host.Env{Block: host.BlockInfo{Time: test.time}}
		assert.Equal(t, test.timestamp, env.Timestamp(), "%d: wrong timestamp", i)
	}
}

func TestQueryAlwaysAborts(t *testing.T) {
	executor, trx, pool, ctl := setupExecutor(t)
	defer ctl.Finish()

	gomock.InOrder(
		trx.EXPECT().Get(pool, []byte("k")).Return([]byte("v"), nil),
		trx.EXPECT().Abort(),
	)
	trx.EXPECT().Commit().Times(0)

	result, err := executor.Query("test", func(trx storage.Transaction, env host.Env) ([]byte, error) {
		assert.Equal(t, testTime, env.Block.Time, "wrong time")
		return trx.Get(pool, []byte("k"))
	})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []byte("v"), result, "wrong result")
	assert.Equal(t, uint64(0), executor.Height(), "query advanced height")
}

func TestRefusedWhenStopped(t *testing.T) {
	executor, _, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	mode.Set(mode.Stopped)
	defer mode.Set(mode.Normal)

	_, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		t.Error("handler called during shutdown")
		return nil, nil
	})
	assert.Equal(t, fault.NotAvailableDuringShutdown, err, "execute allowed")

	_, err = executor.Query("test", func(trx storage.Transaction, env host.Env) ([]byte, error) {
		t.Error("query called during shutdown")
		return nil, nil
	})
	assert.Equal(t, fault.NotAvailableDuringShutdown, err, "query allowed")
}

func TestRefusedWhileStopping(t *testing.T) {
	executor, _, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	mode.Set(mode.Stopping)
	defer mode.Set(mode.Normal)

	_, err := executor.Query("test", func(trx storage.Transaction, env host.Env) ([]byte, error) {
		t.Error("query called while stopping")
		return nil, nil
	})
	assert.Equal(t, fault.NotAvailableDuringShutdown, err, "query allowed")
}

func TestEventBroadcast(t *testing.T) {
	executor, trx, _, ctl := setupExecutor(t)
	defer ctl.Finish()

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release(queue)

	trx.EXPECT().Commit().Return(nil)

	_, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return host.NewResponse().AddAttribute("action", "store_draft").AddAttribute("sender", info.Sender.String()), nil
	})
	assert.Nil(t, err, "execute error")

	select {
	case m := <-queue:
		assert.Equal(t, host.EventCommand, m.Command, "wrong command")
		assert.Equal(t, 1, len(m.Parameters), "wrong parameter count")

		var event host.Event
		err := json.Unmarshal(m.Parameters[0], &event)
		assert.Nil(t, err, "event decode error")
		assert.Equal(t, uint64(testTime.Unix()), event.Timestamp, "wrong timestamp")
		assert.Equal(t, []host.Attribute{
			{Key: "action", Value: "store_draft"},
			{Key: "sender", Value: sender.String()},
		}, event.Attributes, "wrong attributes")
	case <-time.After(time.Second):
		t.Error("no event received")
	}
}

func TestRequestsAreSerial(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	trx.EXPECT().Commit().Return(nil).AnyTimes()

	executor := host.NewExecutorWith(fixedClock, func() (storage.Transaction, error) {
		return trx, nil
	})

	const requests = 20
	inFlight := int32(0)
	overlapped := int32(0)

	var wg sync.WaitGroup
	for i := 0; i < requests; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
				if atomic.AddInt32(&inFlight, 1) > 1 {
					atomic.StoreInt32(&overlapped, 1)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return host.NewResponse(), nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&overlapped), "requests overlapped")
	assert.Equal(t, uint64(requests), executor.Height(), "wrong height")
}

func TestEventTimestampBeforeEpoch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := mocks.NewMockTransaction(ctl)
	clock := func() time.Time {
		return time.Unix(-3600, 0)
	}
	executor := host.NewExecutorWith(clock, func() (storage.Transaction, error) {
		return trx, nil
	})

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release(queue)

	trx.EXPECT().Commit().Return(nil)

	_, err := executor.Execute("test", host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return host.NewResponse().AddAttribute("action", "test"), nil
	})
	assert.Nil(t, err, "execute error")

	select {
	case m := <-queue:
		var event host.Event
		err := json.Unmarshal(m.Parameters[0], &event)
		assert.Nil(t, err, "event decode error")
		assert.Equal(t, uint64(0), event.Timestamp, "pre-epoch time wrapped")
	case <-time.After(time.Second):
		t.Error("no event received")
	}
}
