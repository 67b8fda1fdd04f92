// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package draft

import (
	"encoding/binary"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/util"
)

const timestampLength = 8

// Draft - one identity's stored record
type Draft struct {
	EncryptedContent  string `json:"encrypted_content"`
	EncryptedMetadata string `json:"encrypted_metadata"`
	Timestamp         uint64 `json:"timestamp"`
}

// Packed - the stored form of a draft
type Packed []byte

// Pack - convert a draft to its stored form
func (d *Draft) Pack() Packed {
	buffer := make([]byte, timestampLength, timestampLength+len(d.EncryptedContent)+len(d.EncryptedMetadata)+2*util.Varint64MaximumBytes)
	binary.BigEndian.PutUint64(buffer, d.Timestamp)
	buffer = util.AppendBytes(buffer, []byte(d.EncryptedContent))
	buffer = util.AppendBytes(buffer, []byte(d.EncryptedMetadata))
	return buffer
}

// Unpack - convert a stored record back to a draft
func (record Packed) Unpack() (*Draft, error) {
	if len(record) < timestampLength {
		return nil, fault.RecordTruncated
	}
	timestamp := binary.BigEndian.Uint64(record)
	n := timestampLength

	content, contentLength := util.ExtractBytes(record[n:])
	if 0 == contentLength {
		return nil, fault.RecordTruncated
	}
	n += contentLength

	metadata, metadataLength := util.ExtractBytes(record[n:])
	if 0 == metadataLength {
		return nil, fault.RecordTruncated
	}
	n += metadataLength

	if n != len(record) {
		return nil, fault.RecordHasExtraData
	}

	return &Draft{
		EncryptedContent:  string(content),
		EncryptedMetadata: string(metadata),
		Timestamp:         timestamp,
	}, nil
}
