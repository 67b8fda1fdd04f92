// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - the singleton contract configuration
//
// holds the owner and the number of identities that currently have a
// draft.  The record is created once by instantiation and never deleted.
package state
