// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main - draft-cli is a JSON-RPC client for draftd
//
// stores, removes and reads per identity drafts, displays the
// contract config and node status, and can follow the events
// published by a draftd over ZeroMQ
package main
