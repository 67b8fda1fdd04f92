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

	"github.com/bitmark-inc/draftd/storage"
)

// common test setup routines

// configure for testing, returns the database directory
func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	database := filepath.Join(dir, "test.leveldb")
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

// post test cleanup
func teardown(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// commit some elements into a pool
func load(t *testing.T, pool storage.Handle, input []stringElement) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, e := range input {
		trx.Put(pool, []byte(e.key), []byte(e.value))
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// data for various test routines

var testElements = []stringElement{
	{"key-one", "data-one"},
	{"key-two", "data-two"},
	{"key-three", "data-three"},
	{"key-four", "data-four"},
	{"key-five", "data-five"},
}

// this is the expected iteration order
var expectedKeys = []string{
	"key-five",
	"key-four",
	"key-one",
	"key-three",
	"key-two",
}
