// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all-or-nothing writes across the pools
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) ([]byte, error)
	Has(Handle, []byte) (bool, error)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - Transaction over a single database
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	t.access.Put(handle.Key(key), value)
}

func (t *TransactionImpl) Delete(handle Handle, key []byte) {
	t.access.Delete(handle.Key(key))
}

// Get - nil, nil if the key does not exist
func (t *TransactionImpl) Get(handle Handle, key []byte) ([]byte, error) {
	return t.access.Get(handle.Key(key))
}

func (t *TransactionImpl) Has(handle Handle, key []byte) (bool, error) {
	return t.access.Has(handle.Key(key))
}

func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}
