// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drafts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitDrafts = 200
	rateBurstDrafts = 100
)

// MaximumPayloadSize - limit on encrypted content plus metadata bytes
const MaximumPayloadSize = 1024 * 1024

// Drafts - type for RPC calls
type Drafts struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Contract contract.Interface
}

// New - create the Drafts RPC service
func New(log *logger.L, c contract.Interface) *Drafts {
	return &Drafts{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitDrafts, rateBurstDrafts),
		Contract: c,
	}
}

// ---

// StoreArguments - the caller's draft
type StoreArguments struct {
	Sender            *account.Account `json:"sender"`
	EncryptedContent  string           `json:"encrypted_content"`
	EncryptedMetadata string           `json:"encrypted_metadata"`
}

// ActionReply - the attributes of a successful mutation
type ActionReply struct {
	Attributes []host.Attribute `json:"attributes"`
}

// Store - write the sender's draft
func (drafts *Drafts) Store(arguments *StoreArguments, reply *ActionReply) error {

	if nil == arguments {
		return fault.MissingIdentity
	}

	size := len(arguments.EncryptedContent) + len(arguments.EncryptedMetadata)
	if err := ratelimit.LimitPayload(drafts.Limiter, size, MaximumPayloadSize); nil != err {
		return err
	}

	if arguments.Sender.IsZero() {
		return fault.MissingIdentity
	}
	if err := host.CheckNetwork(arguments.Sender); nil != err {
		return err
	}

	drafts.Log.Debugf("store: sender: %s  size: %d", arguments.Sender, size)

	response, err := drafts.Contract.StoreDraft(arguments.Sender, arguments.EncryptedContent, arguments.EncryptedMetadata)
	if nil != err {
		return err
	}
	reply.Attributes = response.Attributes

	return nil
}

// ---

// DeleteArguments - the identity whose draft is removed
type DeleteArguments struct {
	Sender *account.Account `json:"sender"`
}

// Delete - remove the sender's draft
func (drafts *Drafts) Delete(arguments *DeleteArguments, reply *ActionReply) error {

	if err := ratelimit.Limit(drafts.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Sender.IsZero() {
		return fault.MissingIdentity
	}
	if err := host.CheckNetwork(arguments.Sender); nil != err {
		return err
	}

	drafts.Log.Debugf("delete: sender: %s", arguments.Sender)

	response, err := drafts.Contract.DeleteDraft(arguments.Sender)
	if nil != err {
		return err
	}
	reply.Attributes = response.Attributes

	return nil
}

// ---

// GetArguments - the identity to read
type GetArguments struct {
	Address *account.Account `json:"address"`
}

// Get - read any identity's draft
func (drafts *Drafts) Get(arguments *GetArguments, reply *contract.DraftResponse) error {

	if err := ratelimit.Limit(drafts.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingIdentity
	}
	if err := host.CheckNetwork(arguments.Address); nil != err {
		return err
	}

	response, err := drafts.Contract.GetDraft(arguments.Address)
	if nil != err {
		return err
	}
	*reply = *response

	return nil
}

// ---

// ConfigArguments - empty arguments for config request
type ConfigArguments struct{}

// Config - read the owner and draft count
func (drafts *Drafts) Config(_ *ConfigArguments, reply *contract.ConfigResponse) error {

	if err := ratelimit.Limit(drafts.Limiter); nil != err {
		return err
	}

	response, err := drafts.Contract.GetConfig()
	if nil != err {
		return err
	}
	*reply = *response

	return nil
}
