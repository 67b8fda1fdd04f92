// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/rpc/handler"
	"github.com/bitmark-inc/logger"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
	maxHeaderBytes   = 1 << 20

	// PathPrefix - URL prefix for all endpoints
	PathPrefix = "/draftd/"
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	endpoints []endpoint
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
}

// Serve - start one HTTP server per endpoint
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	tlsConfig := h.tlsConfig.Clone()
	tlsConfig.NextProtos = []string{"http/1.1"}

	for _, e := range h.endpoints {
		h.log.Infof("starting %s on: %s %s", httpsLogName, e.network, e.address)

		ln, err := net.Listen(e.network, e.address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			h.closeAll()
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: maxHeaderBytes,
		}
		h.servers = append(h.servers, s)

		go func(s *http.Server, ln net.Listener) {
			err := s.Serve(tls.NewListener(keepAliveListener{ln.(*net.TCPListener)}, tlsConfig))
			h.log.Infof("%s terminated: %s", httpsLogName, err)
		}(s, ln)
	}

	return nil
}

// Stop - close every server
func (h *httpsListener) Stop() error {
	h.Lock()
	defer h.Unlock()

	h.closeAll()
	return nil
}

func (h *httpsListener) closeAll() {
	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
}

type keepAliveListener struct {
	*net.TCPListener
}

func (ln keepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// parseAllow - CIDR lists for each restricted endpoint
func parseAllow(allow map[string][]string) (map[string][]*net.IPNet, error) {
	result := make(map[string][]*net.IPNet, len(allow))
	for name, cidrs := range allow {
		nets := make([]*net.IPNet, 0, len(cidrs))
		for _, s := range cidrs {
			_, ipNet, err := net.ParseCIDR(strings.TrimSpace(s))
			if nil != err {
				return nil, err
			}
			nets = append(nets, ipNet)
		}
		result[name] = nets
	}
	return result, nil
}

// NewHTTPS - validate the configuration and create the HTTPS listener
//
// returns nil when no listen addresses are configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	endpoints, err := parseEndpoints(httpsLogName, configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	allow, err := parseAllow(configuration.Allow)
	if nil != err {
		log.Errorf("%s allow error: %s", httpsLogName, err)
		return nil, err
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc(PathPrefix+"rpc", hdlr.RPC)
	mux.HandleFunc(PathPrefix+"details", hdlr.Details)
	mux.HandleFunc(PathPrefix+"metrics", hdlr.Metrics)
	mux.HandleFunc("/", hdlr.Root)

	return &httpsListener{
		log:       log,
		endpoints: endpoints,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}
