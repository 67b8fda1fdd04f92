// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/storage"
)

// the single key in the config pool
var configKey = []byte("config")

// Store - access to the config pool
type Store struct {
	pool storage.Handle
}

// NewStore - config held in the given pool
func NewStore(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// Load - read the config, fails if not yet instantiated
func (s *Store) Load(trx storage.Transaction) (*Config, error) {
	packed, err := trx.Get(s.pool, configKey)
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.NotInstantiated
	}
	return Packed(packed).Unpack()
}

// Save - overwrite the config
func (s *Store) Save(trx storage.Transaction, config *Config) error {
	packed, err := config.Pack()
	if nil != err {
		return err
	}
	trx.Put(s.pool, configKey, packed)
	return nil
}

// Exists - check if instantiation has run
func (s *Store) Exists(trx storage.Transaction) (bool, error) {
	return trx.Has(s.pool, configKey)
}
