// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package draft - per-identity encrypted draft records
//
// each identity owns at most one draft, stored in the drafts pool under
// the identity's canonical account bytes.  The content and metadata
// are opaque ciphertext and are returned exactly as stored.
//
// packed record layout:
//
//	uint64be(timestamp)
//	varint(len(content))  content
//	varint(len(metadata)) metadata
package draft
