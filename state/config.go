// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/util"
)

const countLength = 8

// Config - contract wide state
type Config struct {
	Owner      *account.Account `json:"owner"`
	DraftCount uint64           `json:"draft_count"`
}

// Packed - the stored form of a config
type Packed []byte

// Increment - one more identity has a draft
func (c *Config) Increment() {
	c.DraftCount += 1
}

// Decrement - one less identity has a draft, never below zero
func (c *Config) Decrement() {
	if c.DraftCount > 0 {
		c.DraftCount -= 1
	}
}

// Pack - varint(len(owner)) owner uint64be(draft_count)
func (c *Config) Pack() (Packed, error) {
	if nil == c.Owner || nil == c.Owner.AccountInterface {
		return nil, fault.MissingIdentity
	}
	buffer := util.AppendBytes(nil, c.Owner.Bytes())
	count := make([]byte, countLength)
	binary.BigEndian.PutUint64(count, c.DraftCount)
	return append(buffer, count...), nil
}

// Unpack - convert a stored record back to a config
func (record Packed) Unpack() (*Config, error) {
	ownerBytes, n := util.ExtractBytes(record)
	if 0 == n {
		return nil, fault.RecordTruncated
	}
	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}

	if len(record)-n < countLength {
		return nil, fault.RecordTruncated
	}
	if len(record)-n > countLength {
		return nil, fault.RecordHasExtraData
	}

	return &Config{
		Owner:      owner,
		DraftCount: binary.BigEndian.Uint64(record[n:]),
	}, nil
}
