// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/rpc/drafts"
)

// StoreDraft - write or replace the draft of the sender
func (client *Client) StoreDraft(sender *account.Account, content string, metadata string) (*drafts.ActionReply, error) {
	args := drafts.StoreArguments{
		Sender:            sender,
		EncryptedContent:  content,
		EncryptedMetadata: metadata,
	}
	var reply drafts.ActionReply
	if err := client.call("Drafts.Store", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DeleteDraft - remove the draft of the sender
func (client *Client) DeleteDraft(sender *account.Account) (*drafts.ActionReply, error) {
	args := drafts.DeleteArguments{
		Sender: sender,
	}
	var reply drafts.ActionReply
	if err := client.call("Drafts.Delete", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetDraft - read the draft stored for an address
func (client *Client) GetDraft(address *account.Account) (*contract.DraftResponse, error) {
	args := drafts.GetArguments{
		Address: address,
	}
	var reply contract.DraftResponse
	if err := client.call("Drafts.Get", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetConfig - read the contract owner and draft count
func (client *Client) GetConfig() (*contract.ConfigResponse, error) {
	var reply contract.ConfigResponse
	if err := client.call("Drafts.Config", &drafts.ConfigArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
