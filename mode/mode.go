// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - whether the daemon is accepting requests
//
// the daemon starts Stopped, is set Normal once storage and the
// contract are ready, and passes through Stopping on shutdown so
// requests arriving after a signal are refused
package mode

import (
	"sync"

	"github.com/bitmark-inc/draftd/chain"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/logger"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Normal
	Stopping
	maximum
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool
	chain   string

	initialised bool
}

// Initialise - set up the mode system in Stopped mode for a chain
func Initialise(chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mode")

	if !chain.Valid(chainName) {
		globalData.log.Criticalf("mode cannot handle chain: %q", chainName)
		return fault.InvalidChain
	}

	globalData.chain = chainName
	globalData.testing = chain.IsTesting(chainName)
	globalData.mode = Stopped
	globalData.initialised = true

	globalData.log.Infof("chain: %s  testing: %t", chainName, globalData.testing)

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Set - change mode
func Set(mode Mode) {

	if mode < Stopped || mode >= maximum {
		if nil != globalData.log {
			globalData.log.Errorf("ignore invalid set: %d", mode)
		}
		return
	}

	globalData.Lock()
	previous := globalData.mode
	globalData.mode = mode
	globalData.Unlock()

	if nil != globalData.log && previous != mode {
		globalData.log.Infof("set: %s → %s", previous, mode)
	}
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode != globalData.mode
}

// Accepting - true only in Normal mode
func Accepting() bool {
	return Is(Normal)
}

// IsTesting - identities use the test network flag
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Normal:
		return "Normal"
	case Stopping:
		return "Stopping"
	default:
		return "*Unknown*"
	}
}
