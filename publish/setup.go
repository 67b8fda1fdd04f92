// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/draftd/background"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/util"
	"github.com/bitmark-inc/draftd/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

var globalData struct {
	sync.RWMutex

	log        *logger.L
	brdc       broadcaster
	publicKey  []byte
	background *background.T

	initialised bool
}

// Initialise - start the event broadcaster
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration, chain string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log

	if 0 == len(configuration.Broadcast) {
		log.Info("disabled: no broadcast addresses")
		return nil
	}

	privateKey, publicKey, err := readKeys(configuration)
	if nil != err {
		log.Errorf("key error: %s", err)
		return err
	}
	log.Tracef("public key: %x", publicKey)

	listen, err := util.NewConnections(configuration.Broadcast)
	if nil != err {
		log.Errorf("broadcast address error: %s", err)
		return err
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return err
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, listen, chain); nil != err {
		return err
	}

	globalData.publicKey = publicKey
	globalData.background = background.Start(background.Processes{&globalData.brdc}, log)
	globalData.initialised = true

	log.Info("started")
	return nil
}

func readKeys(configuration *Configuration) ([]byte, []byte, error) {
	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		return nil, nil, fmt.Errorf("private key file: %q  error: %s", configuration.PrivateKey, err)
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		return nil, nil, fmt.Errorf("public key file: %q  error: %s", configuration.PublicKey, err)
	}
	return privateKey, publicKey, nil
}

// PublicKey - key subscribers must use to connect, nil while disabled
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()
	globalData.publicKey = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
