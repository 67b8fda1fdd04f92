// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	core "github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/contract/mocks"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/rpc/contract"
	"github.com/bitmark-inc/draftd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestInstantiate(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	owner := fixtures.Identity(2)
	response := host.NewResponse().
		AddAttribute("action", core.InstantiateName).
		AddAttribute("owner", owner.String())

	m.EXPECT().Instantiate(sender, &core.InstantiateMsg{Owner: owner}).Return(response, nil).Times(1)

	var reply contract.ResponseReply
	err := c.Instantiate(&contract.InstantiateArguments{
		Sender: sender,
		Owner:  owner,
	}, &reply)
	assert.Nil(t, err, "wrong Instantiate")
	assert.Equal(t, response.Attributes, reply.Attributes, "wrong attributes")
}

func TestInstantiateWithoutOwner(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	m.EXPECT().Instantiate(sender, &core.InstantiateMsg{}).Return(host.NewResponse(), nil).Times(1)

	var reply contract.ResponseReply
	err := c.Instantiate(&contract.InstantiateArguments{Sender: sender}, &reply)
	assert.Nil(t, err, "wrong Instantiate")
}

func TestInstantiateWhenAlreadyInstantiated(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	m.EXPECT().Instantiate(sender, gomock.Any()).Return(nil, fault.AlreadyInstantiated).Times(1)

	var reply contract.ResponseReply
	err := c.Instantiate(&contract.InstantiateArguments{Sender: sender}, &reply)
	assert.Equal(t, fault.AlreadyInstantiated, err, "wrong error")
}

func TestInstantiateWhenMissingSender(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	var reply contract.ResponseReply
	err := c.Instantiate(&contract.InstantiateArguments{}, &reply)
	assert.Equal(t, fault.MissingIdentity, err, "wrong error")
}

func TestWrongNetwork(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	var reply contract.ResponseReply
	err := c.Instantiate(&contract.InstantiateArguments{
		Sender: fixtures.LiveIdentity(1),
	}, &reply)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong sender error")

	err = c.Instantiate(&contract.InstantiateArguments{
		Sender: fixtures.Identity(1),
		Owner:  fixtures.LiveIdentity(2),
	}, &reply)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong owner error")

	err = c.Execute(&contract.ExecuteArguments{
		Sender: fixtures.LiveIdentity(1),
		Msg:    json.RawMessage(`{"delete_draft":{}}`),
	}, &reply)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong execute error")
}

func TestExecute(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	msg := json.RawMessage(`{"delete_draft":{}}`)
	response := host.NewResponse().AddAttribute("action", core.DeleteDraftName)

	m.EXPECT().ExecuteJSON(sender, []byte(msg)).Return(response, nil).Times(1)

	var reply contract.ResponseReply
	err := c.Execute(&contract.ExecuteArguments{
		Sender: sender,
		Msg:    msg,
	}, &reply)
	assert.Nil(t, err, "wrong Execute")
	assert.Equal(t, response.Attributes, reply.Attributes, "wrong attributes")
}

func TestExecuteWhenInvalidMessage(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	m.EXPECT().ExecuteJSON(sender, gomock.Any()).Return(nil, fault.InvalidMessage).Times(1)

	var reply contract.ResponseReply
	err := c.Execute(&contract.ExecuteArguments{
		Sender: sender,
		Msg:    json.RawMessage(`{}`),
	}, &reply)
	assert.Equal(t, fault.InvalidMessage, err, "wrong error")
}

func TestQuery(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	msg := json.RawMessage(`{"get_config":{}}`)
	result := []byte(`{"owner":null,"draft_count":0}`)
	m.EXPECT().QueryJSON([]byte(msg)).Return(result, nil).Times(1)

	var reply contract.QueryReply
	err := c.Query(&contract.QueryArguments{Msg: msg}, &reply)
	assert.Nil(t, err, "wrong Query")
	assert.Equal(t, json.RawMessage(result), reply.Data, "wrong data")
}

func TestQueryWhenNotFound(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	c := contract.New(logger.New(fixtures.LogCategory), m)

	m.EXPECT().QueryJSON(gomock.Any()).Return(nil, fault.DraftNotFound).Times(1)

	var reply contract.QueryReply
	err := c.Query(&contract.QueryArguments{Msg: json.RawMessage(`{"get_draft":{"address":"x"}}`)}, &reply)
	assert.Equal(t, fault.DraftNotFound, err, "wrong error")
}
