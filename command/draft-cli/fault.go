// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/draftd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidMessage   = fault.InvalidError("query message is not valid JSON")
	ErrMissingAddress   = fault.InvalidError("missing address")
	ErrMissingContent   = fault.InvalidError("missing encrypted content")
	ErrMissingMessage   = fault.InvalidError("missing query message")
	ErrMissingSender    = fault.InvalidError("missing sender")
	ErrMissingServerKey = fault.InvalidError("missing publisher public key file")
)
