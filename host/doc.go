// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - the execution environment for contract handlers
//
// requests run one at a time, each inside its own storage
// transaction.  A handler that returns an error has all of its writes
// discarded; a handler that succeeds has all of its writes committed
// together.  Queries never commit.
//
// the attributes of every committed response are broadcast as an
// event on the message bus.
package host
