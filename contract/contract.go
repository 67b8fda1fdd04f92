// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/storage"
)

// Interface - contract operations available to the outer shell
type Interface interface {
	Height() uint64
	Instantiate(*account.Account, *InstantiateMsg) (*host.Response, error)
	ExecuteJSON(*account.Account, []byte) (*host.Response, error)
	StoreDraft(*account.Account, string, string) (*host.Response, error)
	DeleteDraft(*account.Account) (*host.Response, error)
	QueryJSON([]byte) ([]byte, error)
	GetDraft(*account.Account) (*DraftResponse, error)
	GetConfig() (*ConfigResponse, error)
	Recount() (*host.Response, error)
}

// Contract - handlers bound to an executor
type Contract struct {
	executor *host.Executor
	handles  *Handles
}

var _ Interface = (*Contract)(nil)

// New - contract over the global storage pools
func New(executor *host.Executor) *Contract {
	return NewWith(executor, NewHandles(storage.Pool.Config, storage.Pool.Drafts))
}

// NewWith - contract over specific handles
func NewWith(executor *host.Executor, handles *Handles) *Contract {
	return &Contract{
		executor: executor,
		handles:  handles,
	}
}

// Handles - the underlying stores
func (c *Contract) Handles() *Handles {
	return c.handles
}

// Height - number of mutating requests started
func (c *Contract) Height() uint64 {
	return c.executor.Height()
}

// Instantiate - create the config
func (c *Contract) Instantiate(sender *account.Account, msg *InstantiateMsg) (*host.Response, error) {
	return c.executor.Execute(InstantiateName, host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return c.handles.Instantiate(trx, env, info, msg)
	})
}

// Execute - run a decoded mutating message
func (c *Contract) Execute(sender *account.Account, msg *ExecuteMsg) (*host.Response, error) {
	return c.executor.Execute(executeKind(msg), host.MessageInfo{Sender: sender}, func(trx storage.Transaction, env host.Env, info host.MessageInfo) (*host.Response, error) {
		return c.handles.Execute(trx, env, info, msg)
	})
}

// ExecuteJSON - decode and run a mutating message
func (c *Contract) ExecuteJSON(sender *account.Account, data []byte) (*host.Response, error) {
	msg, err := ParseExecuteMsg(data)
	if nil != err {
		return nil, err
	}
	return c.Execute(sender, msg)
}

// StoreDraft - store the sender's draft
func (c *Contract) StoreDraft(sender *account.Account, content string, metadata string) (*host.Response, error) {
	return c.Execute(sender, &ExecuteMsg{
		StoreDraft: &StoreDraft{
			EncryptedContent:  content,
			EncryptedMetadata: metadata,
		},
	})
}

// DeleteDraft - delete the sender's draft
func (c *Contract) DeleteDraft(sender *account.Account) (*host.Response, error) {
	return c.Execute(sender, &ExecuteMsg{
		DeleteDraft: &DeleteDraft{},
	})
}

// Query - run a decoded read only message, returns JSON
func (c *Contract) Query(msg *QueryMsg) ([]byte, error) {
	return c.executor.Query(queryKind(msg), func(trx storage.Transaction, env host.Env) ([]byte, error) {
		return c.handles.Query(trx, env, msg)
	})
}

// QueryJSON - decode and run a read only message
func (c *Contract) QueryJSON(data []byte) ([]byte, error) {
	msg, err := ParseQueryMsg(data)
	if nil != err {
		return nil, err
	}
	return c.Query(msg)
}

// GetDraft - the draft of address
func (c *Contract) GetDraft(address *account.Account) (*DraftResponse, error) {
	var reply *DraftResponse
	_, err := c.executor.Query(GetDraftName, func(trx storage.Transaction, env host.Env) ([]byte, error) {
		r, err := c.handles.GetDraft(trx, address)
		reply = r
		return nil, err
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetConfig - the owner and draft count
func (c *Contract) GetConfig() (*ConfigResponse, error) {
	var reply *ConfigResponse
	_, err := c.executor.Query(GetConfigName, func(trx storage.Transaction, env host.Env) ([]byte, error) {
		r, err := c.handles.GetConfig(trx)
		reply = r
		return nil, err
	})
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Recount - repair draft_count on behalf of the owner
func (c *Contract) Recount() (*host.Response, error) {
	config, err := c.GetConfig()
	if nil != err {
		return nil, err
	}
	return c.executor.Execute(RecountName, host.MessageInfo{Sender: config.Owner}, c.handles.Recount)
}

// metric label for a mutating message
func executeKind(msg *ExecuteMsg) string {
	switch {
	case nil == msg:
		return "invalid"
	case nil != msg.StoreDraft:
		return StoreDraftName
	case nil != msg.DeleteDraft:
		return DeleteDraftName
	default:
		return "invalid"
	}
}

// metric label for a read only message
func queryKind(msg *QueryMsg) string {
	switch {
	case nil == msg:
		return "invalid"
	case nil != msg.GetDraft:
		return GetDraftName
	case nil != msg.GetConfig:
		return GetConfigName
	default:
		return "invalid"
	}
}
