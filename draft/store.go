// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package draft

import (
	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/storage"
)

// Store - access to the drafts pool
type Store struct {
	pool storage.Handle
}

// NewStore - drafts held in the given pool
func NewStore(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// Put - write or overwrite the draft of an identity
func (s *Store) Put(trx storage.Transaction, identity *account.Account, content string, metadata string, timestamp uint64) {
	d := &Draft{
		EncryptedContent:  content,
		EncryptedMetadata: metadata,
		Timestamp:         timestamp,
	}
	trx.Put(s.pool, identity.Bytes(), d.Pack())
}

// Get - the draft of an identity
func (s *Store) Get(trx storage.Transaction, identity *account.Account) (*Draft, error) {
	packed, err := trx.Get(s.pool, identity.Bytes())
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.DraftNotFound
	}
	return Packed(packed).Unpack()
}

// Has - check if an identity has a draft
func (s *Store) Has(trx storage.Transaction, identity *account.Account) (bool, error) {
	return trx.Has(s.pool, identity.Bytes())
}

// Remove - delete the draft of an identity, a missing draft is not an error
func (s *Store) Remove(trx storage.Transaction, identity *account.Account) {
	trx.Delete(s.pool, identity.Bytes())
}

// Count - number of committed drafts
func (s *Store) Count() (int, error) {
	return s.pool.Count()
}

// Map - run a function on every committed draft in key order
func (s *Store) Map(f func(identity *account.Account, d *Draft) error) error {
	return s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		identity, err := account.AccountFromBytes(key)
		if nil != err {
			return err
		}
		d, err := Packed(value).Unpack()
		if nil != err {
			return err
		}
		return f(identity, d)
	})
}
