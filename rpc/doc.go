// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring draftd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Contract.Instantiate  Contract.Execute  Contract.Query
//	Drafts.Store  Drafts.Delete  Drafts.Get  Drafts.Config
//	Node.Info
//
// the same services are available as HTTPS POST to /draftd/rpc
package rpc
