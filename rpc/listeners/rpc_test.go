// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/counter"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/rpc/certificate"
	"github.com/bitmark-inc/draftd/rpc/fixtures"
	"github.com/bitmark-inc/draftd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

// Sizes - a trivial service reporting draft field lengths
type Sizes struct{}

// SizesArguments - a fake draft
type SizesArguments struct {
	Content  string
	Metadata string
}

// Length - total bytes of both fields
func (Sizes) Length(arguments *SizesArguments, reply *int) error {
	*reply = len(arguments.Content) + len(arguments.Metadata)
	return nil
}

func testTLSConfig(t *testing.T) (*tls.Config, [32]byte) {
	wd, _ := os.Getwd()
	fixturePath := path.Join(filepath.Dir(wd), "fixtures")
	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(fixturePath),
		fixtures.Key(fixturePath),
	)
	if err != nil {
		t.Fatalf("get certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}

func randomListen() string {
	return fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
}

func TestRPCListenerServeAndStop(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := randomListen()
	cfg := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	assert.Nil(t, s.Register(Sizes{}), "wrong Register")

	tlsConfig, fingerprint := testTLSConfig(t)
	count := counter.Counter(0)
	l, err := listeners.NewRPC(&cfg, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial error: %s", err)
	}

	client := jsonrpc.NewClient(conn)
	var reply int
	err = client.Call("Sizes.Length", &SizesArguments{Content: "abcd", Metadata: "ef"}, &reply)
	assert.Nil(t, err, "wrong Call")
	assert.Equal(t, 6, reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "connection not counted")

	_ = client.Close()
	assert.Nil(t, l.Stop(), "wrong Stop")

	_, err = tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.NotNil(t, err, "still accepting after Stop")
}

func TestRPCListenerRefusesBeyondMaximum(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := randomListen()
	cfg := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	assert.Nil(t, s.Register(Sizes{}), "wrong Register")

	tlsConfig, fingerprint := testTLSConfig(t)
	count := counter.Counter(0)
	l, err := listeners.NewRPC(&cfg, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	first, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(first)
	defer client.Close()

	var reply int
	assert.Nil(t, client.Call("Sizes.Length", &SizesArguments{Content: "x"}, &reply), "first call")

	// the slot is held by the first client so this one is closed
	second, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		_ = second.SetDeadline(time.Now().Add(5 * time.Second))
		refused := jsonrpc.NewClient(second)
		err = refused.Call("Sizes.Length", &SizesArguments{Content: "y"}, &reply)
		_ = refused.Close()
	}
	assert.NotNil(t, err, "second connection was served")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestNewRPCConfigurationErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tests := []struct {
		cfg listeners.RPCConfiguration
		err error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{}}, fault.MissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"1"}}, fault.InvalidIpAddress},
		{listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"*:2130"}}, nil},
		{listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"[::1]:2130", "127.0.0.1:2130"}}, nil},
	}

	for i, test := range tests {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(&test.cfg, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, test.err, err, "%d: wrong error", i)
	}
}

func TestRPCListenerServeWithoutCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cfg := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{randomListen()},
	}

	count := counter.Counter(0)
	l, err := listeners.NewRPC(&cfg, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.NotNil(t, err, "wrong Serve")
	assert.Contains(t, err.Error(), "tls", "wrong error message")
}
