// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make error")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private error")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public read as private")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private read as public")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "keys overwritten")
}

func TestParseKey(t *testing.T) {
	hex32 := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("  PUBLIC:" + hex32 + "\n")
	assert.Nil(t, err, "public error")
	assert.False(t, private, "public is private")
	assert.Equal(t, 32, len(key), "wrong length")

	_, private, err = zmqutil.ParseKey("PRIVATE:" + hex32)
	assert.Nil(t, err, "private error")
	assert.True(t, private, "private is public")

	_, _, err = zmqutil.ParseKey("PUBLIC:abcd")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short key accepted")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "bad hex accepted")

	_, _, err = zmqutil.ParseKey(hex32)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")
}

func TestNewKeyPair(t *testing.T) {
	publicKey, privateKey, err := zmqutil.NewKeyPair()
	assert.Nil(t, err, "new key pair error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")
	assert.NotEqual(t, publicKey, privateKey, "keys are the same")
}
