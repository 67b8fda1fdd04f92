// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for internally generated
// events
//
// senders never block on listeners; a message sent while nothing is
// listening is dropped
package messagebus
