// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/sha256"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/chain"
	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Certificate - PEM text of the test certificate
func Certificate(base string) string {
	return readFile(path.Join(base, "test.crt"))
}

// Key - PEM text of the test certificate's private key
func Key(base string) string {
	return readFile(path.Join(base, "test.key"))
}

// Identity - a deterministic testnet identity
func Identity(n int) *account.Account {
	return identity(n, true)
}

// LiveIdentity - the key of Identity(n) on the live network
func LiveIdentity(n int) *account.Account {
	return identity(n, false)
}

func identity(n int, testnet bool) *account.Account {
	publicKey := sha256.Sum256([]byte(fmt.Sprintf("identity-%d", n)))
	a, err := account.NewED25519(publicKey[:], testnet)
	if nil != err {
		panic(err)
	}
	return a
}

func readFile(fileName string) string {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		fmt.Printf("read file: %q  error: %s\n", fileName, err)
		return ""
	}
	return string(data)
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestChain - logger plus a testing chain so Identity values are on the right network
func SetupTestChain() {
	SetupTestLogger()
	_ = mode.Initialise(chain.Testing)
}

func TeardownTestChain() {
	_ = mode.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
