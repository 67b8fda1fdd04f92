// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/draftd/account"
	core "github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitContract = 200
	rateBurstContract = 200

	// JSON encoded messages carrying at most 1 MiB of draft data
	maximumMessageSize = 2 * 1024 * 1024
)

// Contract - type for RPC calls carrying raw contract messages
type Contract struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract core.Interface
}

// New - create the Contract RPC service
func New(log *logger.L, c core.Interface) *Contract {
	return &Contract{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitContract, rateBurstContract),
		Contract: c,
	}
}

// ResponseReply - attributes and data of a successful mutation
type ResponseReply struct {
	Attributes []host.Attribute `json:"attributes"`
	Data       []byte           `json:"data,omitempty"`
}

func (reply *ResponseReply) set(response *host.Response) {
	reply.Attributes = response.Attributes
	reply.Data = response.Data
}

// ---

// InstantiateArguments - owner defaults to the sender when absent
type InstantiateArguments struct {
	Sender *account.Account `json:"sender"`
	Owner  *account.Account `json:"owner,omitempty"`
}

// Instantiate - create the contract config
func (contract *Contract) Instantiate(arguments *InstantiateArguments, reply *ResponseReply) error {

	if err := ratelimit.Limit(contract.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Sender.IsZero() {
		return fault.MissingIdentity
	}

	if err := host.CheckNetwork(arguments.Sender); nil != err {
		return err
	}

	msg := &core.InstantiateMsg{}
	if !arguments.Owner.IsZero() {
		if err := host.CheckNetwork(arguments.Owner); nil != err {
			return err
		}
		msg.Owner = arguments.Owner
	}

	contract.Log.Infof("instantiate: sender: %s", arguments.Sender)

	response, err := contract.Contract.Instantiate(arguments.Sender, msg)
	if nil != err {
		return err
	}
	reply.set(response)

	return nil
}

// ---

// ExecuteArguments - a raw execute message from sender
type ExecuteArguments struct {
	Sender *account.Account `json:"sender"`
	Msg    json.RawMessage  `json:"msg"`
}

// Execute - decode and run a mutating message
func (contract *Contract) Execute(arguments *ExecuteArguments, reply *ResponseReply) error {

	if nil == arguments {
		return fault.MissingIdentity
	}

	if err := ratelimit.LimitPayload(contract.Limiter, len(arguments.Msg), maximumMessageSize); nil != err {
		return err
	}

	if arguments.Sender.IsZero() {
		return fault.MissingIdentity
	}
	if err := host.CheckNetwork(arguments.Sender); nil != err {
		return err
	}

	response, err := contract.Contract.ExecuteJSON(arguments.Sender, arguments.Msg)
	if nil != err {
		return err
	}
	reply.set(response)

	return nil
}

// ---

// QueryArguments - a raw query message
type QueryArguments struct {
	Msg json.RawMessage `json:"msg"`
}

// QueryReply - the JSON encoded query result
type QueryReply struct {
	Data json.RawMessage `json:"data"`
}

// Query - decode and run a read only message
func (contract *Contract) Query(arguments *QueryArguments, reply *QueryReply) error {

	if err := ratelimit.Limit(contract.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidMessage
	}

	data, err := contract.Contract.QueryJSON(arguments.Msg)
	if nil != err {
		return err
	}
	reply.Data = data

	return nil
}
