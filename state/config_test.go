// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/state"
)

var owner, _ = account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj")

func TestIncrementDecrement(t *testing.T) {
	c := state.Config{Owner: owner}

	c.Increment()
	c.Increment()
	assert.Equal(t, uint64(2), c.DraftCount, "wrong count after increment")

	c.Decrement()
	c.Decrement()
	c.Decrement()
	assert.Equal(t, uint64(0), c.DraftCount, "count went below zero")
}

func TestConfigPackUnpack(t *testing.T) {
	for _, count := range []uint64{0, 1, 12345, 0xffffffffffffffff} {
		c := state.Config{
			Owner:      owner,
			DraftCount: count,
		}
		packed, err := c.Pack()
		assert.Nil(t, err, "pack error")

		result, err := packed.Unpack()
		assert.Nil(t, err, "unpack error")
		assert.True(t, owner.Equal(result.Owner), "owner changed")
		assert.Equal(t, count, result.DraftCount, "count changed")
	}
}

func TestConfigPackMissingOwner(t *testing.T) {
	c := state.Config{}
	_, err := c.Pack()
	assert.Equal(t, fault.MissingIdentity, err, "missing owner accepted")
}

func TestConfigUnpackErrors(t *testing.T) {
	c := state.Config{Owner: owner, DraftCount: 7}
	packed, _ := c.Pack()

	_, err := packed[:len(packed)-1].Unpack()
	assert.Equal(t, fault.RecordTruncated, err, "short count accepted")

	_, err = state.Packed{}.Unpack()
	assert.Equal(t, fault.RecordTruncated, err, "empty record accepted")

	_, err = append(packed, 0).Unpack()
	assert.Equal(t, fault.RecordHasExtraData, err, "extra data accepted")
}

func TestConfigJSON(t *testing.T) {
	c := state.Config{Owner: owner, DraftCount: 3}
	buffer, err := json.Marshal(c)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj","draft_count":3}`, string(buffer), "wrong JSON")
}
