// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/draft"
	"github.com/bitmark-inc/draftd/fault"
)

var testDrafts = []draft.Draft{
	{
		EncryptedContent:  "c1",
		EncryptedMetadata: "m1",
		Timestamp:         1571234567,
	},
	{
		EncryptedContent:  "",
		EncryptedMetadata: "",
		Timestamp:         0,
	},
	{
		EncryptedContent:  "\x00\xff\xfe binary \x80",
		EncryptedMetadata: `{"nonce":"AAECAw=="}`,
		Timestamp:         0xffffffffffffffff,
	},
}

func TestPackUnpack(t *testing.T) {
	for i, d := range testDrafts {
		packed := d.Pack()
		unpacked, err := packed.Unpack()
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, d, *unpacked, "%d: draft changed", i)
	}
}

func TestPackLayout(t *testing.T) {
	d := draft.Draft{
		EncryptedContent:  "ab",
		EncryptedMetadata: "c",
		Timestamp:         0x0102,
	}
	expected := draft.Packed{
		0, 0, 0, 0, 0, 0, 0x01, 0x02,
		0x02, 'a', 'b',
		0x01, 'c',
	}
	assert.Equal(t, expected, d.Pack(), "wrong layout")
}

func TestUnpackTruncated(t *testing.T) {
	packed := testDrafts[0].Pack()
	for n := 0; n < len(packed); n += 1 {
		_, err := packed[:n].Unpack()
		assert.Equal(t, fault.RecordTruncated, err, "truncated at %d", n)
	}
}

func TestUnpackExtraData(t *testing.T) {
	packed := append(testDrafts[0].Pack(), 0x00)
	_, err := packed.Unpack()
	assert.Equal(t, fault.RecordHasExtraData, err, "extra data accepted")
	assert.True(t, fault.IsErrStorage(err), "not a storage class error")
}
