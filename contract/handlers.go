// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"strconv"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/draft"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/state"
	"github.com/bitmark-inc/draftd/storage"
)

// attribute keys
const (
	actionKey = "action"
	senderKey = "sender"
	ownerKey  = "owner"
	countKey  = "draft_count"
)

// Handles - the stores the handlers operate on
type Handles struct {
	Config *state.Store
	Drafts *draft.Store
}

// NewHandles - handlers over the given pools
func NewHandles(configPool storage.Handle, draftPool storage.Handle) *Handles {
	return &Handles{
		Config: state.NewStore(configPool),
		Drafts: draft.NewStore(draftPool),
	}
}

// Instantiate - create the config, a second instantiation is refused
func (h *Handles) Instantiate(trx storage.Transaction, env host.Env, info host.MessageInfo, msg *InstantiateMsg) (*host.Response, error) {
	exists, err := h.Config.Exists(trx)
	if nil != err {
		return nil, err
	}
	if exists {
		return nil, fault.AlreadyInstantiated
	}

	owner := info.Sender
	if nil != msg && nil != msg.Owner {
		owner = msg.Owner
	}
	if err := host.CheckNetwork(owner); nil != err {
		return nil, err
	}

	config := &state.Config{
		Owner:      owner,
		DraftCount: 0,
	}
	if err := h.Config.Save(trx, config); nil != err {
		return nil, err
	}

	return host.NewResponse().
		AddAttribute(actionKey, InstantiateName).
		AddAttribute(ownerKey, owner.String()), nil
}

// Execute - dispatch a mutating message
func (h *Handles) Execute(trx storage.Transaction, env host.Env, info host.MessageInfo, msg *ExecuteMsg) (*host.Response, error) {
	switch {
	case nil == msg:
		return nil, fault.InvalidMessage
	case nil != msg.StoreDraft && nil != msg.DeleteDraft:
		return nil, fault.InvalidMessage
	case nil != msg.StoreDraft:
		return h.StoreDraft(trx, env, info, msg.StoreDraft)
	case nil != msg.DeleteDraft:
		return h.DeleteDraft(trx, env, info)
	default:
		return nil, fault.InvalidMessage
	}
}

// StoreDraft - write the sender's draft stamped with the request time
func (h *Handles) StoreDraft(trx storage.Transaction, env host.Env, info host.MessageInfo, msg *StoreDraft) (*host.Response, error) {
	config, err := h.Config.Load(trx)
	if nil != err {
		return nil, err
	}

	existed, err := h.Drafts.Has(trx, info.Sender)
	if nil != err {
		return nil, err
	}

	h.Drafts.Put(trx, info.Sender, msg.EncryptedContent, msg.EncryptedMetadata, env.Timestamp())

	if !existed {
		config.Increment()
		if err := h.Config.Save(trx, config); nil != err {
			return nil, err
		}
	}

	return host.NewResponse().
		AddAttribute(actionKey, StoreDraftName).
		AddAttribute(senderKey, info.Sender.String()), nil
}

// DeleteDraft - remove the sender's draft, fails if there is none
func (h *Handles) DeleteDraft(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
	exists, err := h.Drafts.Has(trx, info.Sender)
	if nil != err {
		return nil, err
	}
	if !exists {
		return nil, fault.DraftNotFound
	}

	config, err := h.Config.Load(trx)
	if nil != err {
		return nil, err
	}

	h.Drafts.Remove(trx, info.Sender)
	config.Decrement()
	if err := h.Config.Save(trx, config); nil != err {
		return nil, err
	}

	return host.NewResponse().
		AddAttribute(actionKey, DeleteDraftName).
		AddAttribute(senderKey, info.Sender.String()), nil
}

// Query - dispatch a read only message, returns the JSON response
func (h *Handles) Query(trx storage.Transaction, env host.Env, msg *QueryMsg) ([]byte, error) {
	var result interface{}
	var err error

	switch {
	case nil == msg:
		return nil, fault.InvalidMessage
	case nil != msg.GetDraft && nil != msg.GetConfig:
		return nil, fault.InvalidMessage
	case nil != msg.GetDraft:
		result, err = h.GetDraft(trx, msg.GetDraft.Address)
	case nil != msg.GetConfig:
		result, err = h.GetConfig(trx)
	default:
		return nil, fault.InvalidMessage
	}
	if nil != err {
		return nil, err
	}
	return json.Marshal(result)
}

// GetDraft - the stored draft of an identity
func (h *Handles) GetDraft(trx storage.Transaction, address *account.Account) (*DraftResponse, error) {
	if err := host.CheckNetwork(address); nil != err {
		return nil, err
	}

	d, err := h.Drafts.Get(trx, address)
	if nil != err {
		return nil, err
	}
	return &DraftResponse{
		EncryptedContent:  d.EncryptedContent,
		EncryptedMetadata: d.EncryptedMetadata,
		Timestamp:         d.Timestamp,
	}, nil
}

// GetConfig - the owner and draft count
func (h *Handles) GetConfig(trx storage.Transaction) (*ConfigResponse, error) {
	config, err := h.Config.Load(trx)
	if nil != err {
		return nil, err
	}
	return &ConfigResponse{
		Owner:      config.Owner,
		DraftCount: config.DraftCount,
	}, nil
}

// Recount - set draft_count to the number of committed drafts
//
// repairs a count written by a deployment that counted every store
func (h *Handles) Recount(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
	config, err := h.Config.Load(trx)
	if nil != err {
		return nil, err
	}

	n, err := h.Drafts.Count()
	if nil != err {
		return nil, err
	}

	previous := config.DraftCount
	config.DraftCount = uint64(n)
	if err := h.Config.Save(trx, config); nil != err {
		return nil, err
	}

	return host.NewResponse().
		AddAttribute(actionKey, RecountName).
		AddAttribute(senderKey, info.Sender.String()).
		AddAttribute("previous", strconv.FormatUint(previous, 10)).
		AddAttribute(countKey, strconv.FormatUint(config.DraftCount, 10)), nil
}
