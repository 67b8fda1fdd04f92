// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/storage"
)

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

func TestInitialiseTagsVersion(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage-version")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	database := filepath.Join(dir, "test.leveldb")
	assert.Nil(t, storage.Initialise(database, storage.ReadWrite), "initialise error")
	storage.Finalise()

	db, err := leveldb.OpenFile(database, nil)
	if !assert.Nil(t, err, "open error") {
		return
	}
	value, err := db.Get(versionKey, nil)
	db.Close()
	assert.Nil(t, err, "missing version")
	assert.Equal(t, []byte{0, 0, 1, 0}, value, "wrong version")

	// reopening an existing database read only is allowed
	assert.Nil(t, storage.Initialise(database, storage.ReadOnly), "read only initialise error")
	storage.Finalise()
}

func TestInitialiseRefusesNewerVersion(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage-version")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	database := filepath.Join(dir, "test.leveldb")
	db, err := leveldb.OpenFile(database, nil)
	if !assert.Nil(t, err, "open error") {
		return
	}
	_ = db.Put(versionKey, []byte{0, 0, 2, 0}, nil)
	db.Close()

	err = storage.Initialise(database, storage.ReadWrite)
	assert.Equal(t, fault.IncompatibleDatabaseVersion, err, "newer database accepted")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.NotInitialised, err, "storage left open")
}

func TestInitialiseReadOnlyMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage-version")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	err = storage.Initialise(filepath.Join(dir, "missing.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened read only")
	assert.True(t, fault.IsErrStorage(err), "wrong error class")
}
