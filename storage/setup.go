// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Config   *PoolHandle `prefix:"C"`
	Drafts   *PoolHandle `prefix:"D"`
	TestData *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// database version key sorts before every pool prefix
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion uint32 = 0x100

var poolData struct {
	sync.RWMutex
	db  *leveldb.DB
	trx Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open the database and assign the pool handles
//
// a new writable database is tagged with the current version, a newer
// version than this program supports is refused
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return fault.NewStorageError("open", err)
	}

	if err := checkVersion(db, database, readOnly); nil != err {
		db.Close()
		return err
	}

	access := newDA(db, new(leveldb.Batch), newCache())
	if err := setupPools(access); nil != err {
		db.Close()
		Pool = pools{}
		return err
	}

	poolData.db = db
	poolData.trx = newTransaction(access)

	return nil
}

func checkVersion(db *leveldb.DB, database string, readOnly bool) error {
	value, err := db.Get(versionKey, nil)
	switch err {
	case nil:
	case leveldb.ErrNotFound:
		if readOnly {
			return fmt.Errorf("database: %q is not initialised", database)
		}
		value = make([]byte, 4)
		binary.BigEndian.PutUint32(value, currentDBVersion)
		return fault.NewStorageError("version", db.Put(versionKey, value, nil))
	default:
		return fault.NewStorageError("version", err)
	}

	if 4 != len(value) {
		return fmt.Errorf("database: %q version length: %d  expected: 4", database, len(value))
	}

	version := binary.BigEndian.Uint32(value)
	if version > currentDBVersion {
		logger.Criticalf("database: %q version: 0x%x newer than supported: 0x%x", database, version, currentDBVersion)
		return fault.IncompatibleDatabaseVersion
	}
	return nil
}

// scan each field of the pools structure and assign a handle
func setupPools(access Access) error {

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		_ = poolData.db.Close()
		poolData.db = nil
	}
	poolData.trx = nil
	Pool = pools{}
}

// NewDBTransaction - start the single database transaction
//
// fails if a transaction is already in progress
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.NotInitialised
	}
	if err := poolData.trx.Begin(); nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
