// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks whose identities are accepted
package chain

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - chains whose identities carry the test flag
func IsTesting(name string) bool {
	return Testing == name || Local == name
}

// DefaultDatabase - database file name used when none is configured
func DefaultDatabase(name string) string {
	return name + "-drafts.leveldb"
}
