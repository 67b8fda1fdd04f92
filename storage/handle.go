// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Handle - the operations a pool provides to its users
type Handle interface {
	Key([]byte) []byte
	NewFetchCursor() *FetchCursor
	Count() (int, error)
}

// PoolHandle - one prefixed table in the database
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Key - prepend the prefix onto the key
func (p *PoolHandle) Key(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Count - number of committed elements in the pool
func (p *PoolHandle) Count() (int, error) {
	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}
