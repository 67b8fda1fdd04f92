// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the draft contract state transitions
//
//	instantiate   create the config, owner defaults to the sender
//	store_draft   write the sender's draft, count the sender once
//	delete_draft  remove the sender's draft, fails if there is none
//	get_draft     read any identity's draft
//	get_config    read the owner and draft count
//
// draft_count is the number of identities that currently have a
// draft, so storing again over an existing draft leaves it unchanged.
//
// messages are JSON objects with exactly one key naming the variant:
//
//	{"store_draft":{"encrypted_content":"…","encrypted_metadata":"…"}}
//	{"delete_draft":{}}
//	{"get_draft":{"address":"…"}}
//	{"get_config":{}}
package contract
