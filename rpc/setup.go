// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/counter"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/rpc/certificate"
	"github.com/bitmark-inc/draftd/rpc/handler"
	"github.com/bitmark-inc/draftd/rpc/listeners"
	"github.com/bitmark-inc/draftd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

var globalData struct {
	sync.RWMutex

	log *logger.L

	// shared by the JSON-RPC listener and Node.Info
	connections counter.Counter
	listeners   []listeners.Listener

	initialised bool
}

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, c contract.Interface) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	rpcServer := server.Create(log, version, &globalData.connections, c)

	tlsConfig, certificateFingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	httpsListener, err := newHTTPS(httpsConfiguration, log, version, rpcServer, c)
	if nil != err {
		return err
	}

	all := []listeners.Listener{rpcListener}
	if nil != httpsListener {
		all = append(all, httpsListener)
	}

	for i, l := range all {
		if err := l.Serve(); nil != err {
			for _, started := range all[:i] {
				_ = started.Stop()
			}
			return err
		}
	}
	globalData.listeners = all

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		_ = l.Stop()
	}
	globalData.listeners = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of active RPC connections
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}

func newHTTPS(configuration *listeners.HTTPSConfiguration, log *logger.L, version string, rpcServer *rpc.Server, c contract.Interface) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	return listeners.NewHTTPS(configuration, log, tlsConfig, handler.New(log, rpcServer, time.Now(), version, configuration.MaximumConnections, c))
}
