// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/draftd/account"
	rpccontract "github.com/bitmark-inc/draftd/rpc/contract"
)

// Instantiate - create the contract config, owner may be nil
func (client *Client) Instantiate(sender *account.Account, owner *account.Account) (*rpccontract.ResponseReply, error) {
	args := rpccontract.InstantiateArguments{
		Sender: sender,
		Owner:  owner,
	}
	var reply rpccontract.ResponseReply
	if err := client.call("Contract.Instantiate", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Query - send a raw query message
func (client *Client) Query(msg json.RawMessage) (json.RawMessage, error) {
	args := rpccontract.QueryArguments{
		Msg: msg,
	}
	var reply rpccontract.QueryReply
	if err := client.call("Contract.Query", &args, &reply); nil != err {
		return nil, err
	}
	return reply.Data, nil
}
