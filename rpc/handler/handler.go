// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/counter"
	"github.com/bitmark-inc/draftd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// access control names
const (
	detailsAllow = "details"
	metricsAllow = "metrics"
)

// one JSON-RPC call around the largest contract message
const maximumRequestSize = 2*1024*1024 + 64*1024

// Handler - the HTTPS endpoints
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// to allow the rpc system to interface to a http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
	contract           contract.Interface
	metrics            http.Handler
}

// New - create the HTTPS handler, c may be nil when no contract is
// available and details then reports zero drafts
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64, c contract.Interface) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
		contract:           c,
		metrics:            promhttp.Handler(),
	}
}

// SetAllow - replace the access control lists
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	if r.ContentLength > maximumRequestSize {
		sendRequestEntityTooLarge(w)
		return
	}
	body := http.MaxBytesReader(w, r.Body, maximumRequestSize)

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - GET response with the same content as Node.Info
type DetailsReply = node.InfoReply

// Details - node state for allowed addresses
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed(detailsAllow, r) {
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	reply, err := node.Status(h.contract, h.start, h.version, h.count.Uint64())
	if nil != err {
		h.log.Errorf("details: %s", err)
		sendInternalServerError(w)
		return
	}

	sendReply(w, reply)
}

// Metrics - prometheus exposition for allowed addresses
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed(metricsAllow, r) {
		sendForbidden(w)
		return
	}

	h.metrics.ServeHTTP(w, r)
}

func (h *handler) isAllowed(name string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last >= 0 {
		ip := net.ParseIP(strings.Trim(r.RemoteAddr[:last], "[]"))
		if nil != ip {
			for _, cidr := range h.allow[name] {
				if cidr.Contains(ip) {
					return true
				}
			}
		}
	}
	h.log.Warnf("deny access: %q  to: %s", r.RemoteAddr, name)
	return false
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendRequestEntityTooLarge(w http.ResponseWriter) {
	sendError(w, "request too large", http.StatusRequestEntityTooLarge)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
