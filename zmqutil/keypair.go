// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/util"
)

// CURVE keys are 32 bytes, stored as a tag followed by hex
const (
	keyLength     = 32
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
)

// NewKeyPair - an in-memory CURVE key pair as 32 byte public and private keys
func NewKeyPair() ([]byte, []byte, error) {
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, nil, err
	}
	return []byte(zmq.Z85decode(publicKey)), []byte(zmq.Z85decode(privateKey)), nil
}

// MakeKeyPair - create a new key pair and write each half to its own
// file, neither file may already exist
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	publicKey, privateKey, err := NewKeyPair()
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(publicKeyFileName, encodeKey(taggedPublic, publicKey), 0644)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(privateKeyFileName, encodeKey(taggedPrivate, privateKey), 0600)
	if nil != err {
		_ = os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

func encodeKey(tag string, key []byte) []byte {
	return []byte(tag + hex.EncodeToString(key) + "\n")
}

// ReadPublicKeyFile - read a public key file returning it as 32 bytes
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, false)
}

// ReadPrivateKeyFile - read a private key file returning it as 32 bytes
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, true)
}

func readKeyFile(fileName string, wantPrivate bool) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}

	switch {
	case wantPrivate && !private:
		return nil, fault.InvalidPrivateKeyFile
	case !wantPrivate && private:
		return nil, fault.InvalidPublicKeyFile
	}
	return key, nil
}

// ParseKey - decode a tagged hex key, also returns true for a private key
//
// untagged data is reported as an invalid public key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	tag, private, invalid := taggedPublic, false, fault.InvalidPublicKeyFile
	if strings.HasPrefix(s, taggedPrivate) {
		tag, private, invalid = taggedPrivate, true, fault.InvalidPrivateKeyFile
	} else if !strings.HasPrefix(s, taggedPublic) {
		return nil, false, fault.InvalidPublicKeyFile
	}

	key, err := hex.DecodeString(s[len(tag):])
	if nil != err || keyLength != len(key) {
		return nil, false, invalid
	}
	return key, private, nil
}
