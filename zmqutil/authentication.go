// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// the ZAP handler is process wide and runs until exit
var authentication struct {
	sync.Mutex
	started bool
	err     error
	domains map[string]struct{}
}

// StartAuthentication - initialise the ZMQ security subsystem
//
// repeated calls return the result of the first
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.started {
		zmq.AuthSetVerbose(false)
		authentication.err = zmq.AuthStart()
		authentication.started = true
		authentication.domains = make(map[string]struct{})
	}
	return authentication.err
}

// AllowAnyClient - accept every CURVE client key on a ZAP domain
//
// event subscribers are anonymous so no client key list is kept
func AllowAnyClient(zapDomain string) {
	authentication.Lock()
	defer authentication.Unlock()

	if nil == authentication.domains {
		authentication.domains = make(map[string]struct{})
	}
	if _, ok := authentication.domains[zapDomain]; ok {
		return
	}
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
	authentication.domains[zapDomain] = struct{}{}
}
