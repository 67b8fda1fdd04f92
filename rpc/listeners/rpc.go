// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/draftd/counter"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/logger"
)

const rpcLogName = "client_rpc"

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	endpoints      []endpoint
	listeners      []net.Listener
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
}

// Serve - start accepting on every endpoint, nothing is left
// listening if any endpoint fails
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	started := make([]net.Listener, 0, len(r.endpoints))
	for _, e := range r.endpoints {
		r.log.Infof("starting %s on: %s %s", rpcLogName, e.network, e.address)
		l, err := tls.Listen(e.network, e.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("%s listen error: %s", rpcLogName, err)
			for _, s := range started {
				_ = s.Close()
			}
			return err
		}
		started = append(started, l)
	}

	for _, l := range started {
		go r.accept(l)
	}
	r.listeners = append(r.listeners, started...)

	return nil
}

// Stop - close all listeners, connections in progress finish normally
func (r *rpcListener) Stop() error {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	return nil
}

func (r *rpcListener) accept(l net.Listener) {
	for {
		conn, err := l.Accept()
		if nil != err {
			r.log.Infof("%s accept terminated: %s", rpcLogName, err)
			return
		}

		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("refused connection from: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func(conn net.Conn) {
			defer r.count.Release()
			defer conn.Close()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}(conn)
	}
}

// NewRPC - validate the configuration and create a TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", rpcLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", rpcLogName)
		return nil, fault.MissingParameters
	}

	endpoints, err := parseEndpoints(rpcLogName, configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", rpcLogName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		endpoints:      endpoints,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
	}, nil
}
