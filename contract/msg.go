// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/fault"
)

// variant names
const (
	StoreDraftName  = "store_draft"
	DeleteDraftName = "delete_draft"
	GetDraftName    = "get_draft"
	GetConfigName   = "get_config"
	InstantiateName = "instantiate"
	RecountName     = "recount"
)

// InstantiateMsg - owner is optional
type InstantiateMsg struct {
	Owner *account.Account `json:"owner,omitempty"`
}

// ExecuteMsg - exactly one field is set
type ExecuteMsg struct {
	StoreDraft  *StoreDraft  `json:"store_draft,omitempty"`
	DeleteDraft *DeleteDraft `json:"delete_draft,omitempty"`
}

// StoreDraft - content and metadata are opaque ciphertext
type StoreDraft struct {
	EncryptedContent  string `json:"encrypted_content"`
	EncryptedMetadata string `json:"encrypted_metadata"`
}

// DeleteDraft - remove the sender's draft
type DeleteDraft struct{}

// QueryMsg - exactly one field is set
type QueryMsg struct {
	GetDraft  *GetDraft  `json:"get_draft,omitempty"`
	GetConfig *GetConfig `json:"get_config,omitempty"`
}

// GetDraft - read the draft of address
type GetDraft struct {
	Address *account.Account `json:"address"`
}

// GetConfig - read the config
type GetConfig struct{}

// DraftResponse - result of get_draft
type DraftResponse struct {
	EncryptedContent  string `json:"encrypted_content"`
	EncryptedMetadata string `json:"encrypted_metadata"`
	Timestamp         uint64 `json:"timestamp"`
}

// ConfigResponse - result of get_config
type ConfigResponse struct {
	Owner      *account.Account `json:"owner"`
	DraftCount uint64           `json:"draft_count"`
}

// ParseExecuteMsg - decode a mutating request
func ParseExecuteMsg(data []byte) (*ExecuteMsg, error) {
	name, body, err := variant(data)
	if nil != err {
		return nil, err
	}

	msg := &ExecuteMsg{}
	switch name {
	case StoreDraftName:
		msg.StoreDraft = &StoreDraft{}
		err = requireFields(body, "encrypted_content", "encrypted_metadata")
		if nil == err {
			err = strictUnmarshal(body, msg.StoreDraft)
		}
	case DeleteDraftName:
		msg.DeleteDraft = &DeleteDraft{}
		err = strictUnmarshal(body, msg.DeleteDraft)
	default:
		return nil, fault.UnknownMessage
	}
	if nil != err {
		return nil, err
	}
	return msg, nil
}

// ParseQueryMsg - decode a read only request
func ParseQueryMsg(data []byte) (*QueryMsg, error) {
	name, body, err := variant(data)
	if nil != err {
		return nil, err
	}

	msg := &QueryMsg{}
	switch name {
	case GetDraftName:
		msg.GetDraft = &GetDraft{}
		err = strictUnmarshal(body, msg.GetDraft)
		if nil == err && nil == msg.GetDraft.Address {
			err = fault.MissingIdentity
		}
	case GetConfigName:
		msg.GetConfig = &GetConfig{}
		err = strictUnmarshal(body, msg.GetConfig)
	default:
		return nil, fault.UnknownMessage
	}
	if nil != err {
		return nil, err
	}
	return msg, nil
}

// ParseInstantiateMsg - decode an instantiation request, empty input is
// the same as no owner
func ParseInstantiateMsg(data []byte) (*InstantiateMsg, error) {
	msg := &InstantiateMsg{}
	if 0 == len(bytes.TrimSpace(data)) {
		return msg, nil
	}
	if err := strictUnmarshal(data, msg); nil != err {
		return nil, err
	}
	return msg, nil
}

// split {"name": body} into its parts
func variant(data []byte) (string, json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); nil != err {
		return "", nil, fault.InvalidMessage
	}
	if 1 != len(fields) {
		return "", nil, fault.InvalidMessage
	}
	for name, body := range fields {
		if "null" == string(bytes.TrimSpace(body)) {
			return "", nil, fault.InvalidMessage
		}
		return name, body, nil
	}
	return "", nil, fault.InvalidMessage
}

// every named field must be present, an empty string is still a value
func requireFields(data []byte, names ...string) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); nil != err {
		return fault.InvalidMessage
	}
	for _, name := range names {
		value, ok := fields[name]
		if !ok || "null" == string(bytes.TrimSpace(value)) {
			return fault.InvalidMessage
		}
	}
	return nil
}

// decode rejecting fields the message does not have
func strictUnmarshal(data []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); nil != err {
		if fault.IsErrInvalid(err) {
			return err
		}
		return fault.InvalidMessage
	}
	return nil
}
