// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the JSON-RPC services shared by the TLS and HTTPS listeners
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/counter"
	rpccontract "github.com/bitmark-inc/draftd/rpc/contract"
	"github.com/bitmark-inc/draftd/rpc/drafts"
	"github.com/bitmark-inc/draftd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with the Contract, Drafts and Node services
func Create(log *logger.L, version string, rpcCount *counter.Counter, c contract.Interface) *rpc.Server {
	start := time.Now().UTC()

	services := []struct {
		name    string
		service interface{}
	}{
		{"Contract", rpccontract.New(log, c)},
		{"Drafts", drafts.New(log, c)},
		{"Node", node.New(log, start, version, rpcCount, c)},
	}

	server := rpc.NewServer()
	for _, s := range services {
		if err := server.RegisterName(s.name, s.service); nil != err {
			log.Criticalf("register service: %s  error: %s", s.name, err)
			logger.Panicf("rpc register service: %s  error: %s", s.name, err)
		}
	}

	return server
}
