// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drafts_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/contract/mocks"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/rpc/drafts"
	"github.com/bitmark-inc/draftd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestStore(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	response := host.NewResponse().
		AddAttribute("action", contract.StoreDraftName).
		AddAttribute("sender", sender.String())

	m.EXPECT().StoreDraft(sender, "content", "metadata").Return(response, nil).Times(1)

	var reply drafts.ActionReply
	err := d.Store(&drafts.StoreArguments{
		Sender:            sender,
		EncryptedContent:  "content",
		EncryptedMetadata: "metadata",
	}, &reply)
	assert.Nil(t, err, "wrong Store")
	assert.Equal(t, response.Attributes, reply.Attributes, "wrong attributes")
}

func TestStoreWhenMissingSender(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	var reply drafts.ActionReply
	err := d.Store(&drafts.StoreArguments{EncryptedContent: "content"}, &reply)
	assert.Equal(t, fault.MissingIdentity, err, "wrong error")
}

func TestStoreWhenPayloadTooLarge(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	var reply drafts.ActionReply
	err := d.Store(&drafts.StoreArguments{
		Sender:            fixtures.Identity(1),
		EncryptedContent:  strings.Repeat("c", drafts.MaximumPayloadSize),
		EncryptedMetadata: "m",
	}, &reply)
	assert.Equal(t, fault.PayloadTooLarge, err, "wrong error")
}

func TestStoreWhenContractError(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(1)
	m.EXPECT().StoreDraft(sender, "c", "m").Return(nil, fault.NotInstantiated).Times(1)

	var reply drafts.ActionReply
	err := d.Store(&drafts.StoreArguments{
		Sender:            sender,
		EncryptedContent:  "c",
		EncryptedMetadata: "m",
	}, &reply)
	assert.Equal(t, fault.NotInstantiated, err, "wrong error")
	assert.Nil(t, reply.Attributes, "attributes set on error")
}

func TestDelete(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(2)
	response := host.NewResponse().AddAttribute("action", contract.DeleteDraftName)

	m.EXPECT().DeleteDraft(sender).Return(response, nil).Times(1)

	var reply drafts.ActionReply
	err := d.Delete(&drafts.DeleteArguments{Sender: sender}, &reply)
	assert.Nil(t, err, "wrong Delete")
	assert.Equal(t, response.Attributes, reply.Attributes, "wrong attributes")
}

func TestDeleteWhenNoDraft(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	sender := fixtures.Identity(2)
	m.EXPECT().DeleteDraft(sender).Return(nil, fault.DraftNotFound).Times(1)

	var reply drafts.ActionReply
	err := d.Delete(&drafts.DeleteArguments{Sender: sender}, &reply)
	assert.Equal(t, fault.DraftNotFound, err, "wrong error")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	address := fixtures.Identity(3)
	expected := &contract.DraftResponse{
		EncryptedContent:  "c",
		EncryptedMetadata: "m",
		Timestamp:         1000,
	}
	m.EXPECT().GetDraft(address).Return(expected, nil).Times(1)

	var reply contract.DraftResponse
	err := d.Get(&drafts.GetArguments{Address: address}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *expected, reply, "wrong draft")
}

func TestGetWhenMissingAddress(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	var reply contract.DraftResponse
	err := d.Get(&drafts.GetArguments{}, &reply)
	assert.Equal(t, fault.MissingIdentity, err, "wrong error")
}

func TestWrongNetwork(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	live := fixtures.LiveIdentity(1)

	var action drafts.ActionReply
	err := d.Store(&drafts.StoreArguments{
		Sender:            live,
		EncryptedContent:  "content",
		EncryptedMetadata: "metadata",
	}, &action)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong Store error")

	err = d.Delete(&drafts.DeleteArguments{Sender: live}, &action)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong Delete error")

	var reply contract.DraftResponse
	err = d.Get(&drafts.GetArguments{Address: live}, &reply)
	assert.Equal(t, fault.WrongNetworkForIdentity, err, "wrong Get error")
}

func TestConfig(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	expected := &contract.ConfigResponse{
		Owner:      fixtures.Identity(1),
		DraftCount: 4,
	}
	m.EXPECT().GetConfig().Return(expected, nil).Times(1)

	var reply contract.ConfigResponse
	err := d.Config(&drafts.ConfigArguments{}, &reply)
	assert.Nil(t, err, "wrong Config")
	assert.Equal(t, uint64(4), reply.DraftCount, "wrong count")
	assert.True(t, expected.Owner.Equal(reply.Owner), "wrong owner")
}

func TestConfigWhenNotInstantiated(t *testing.T) {
	fixtures.SetupTestChain()
	defer fixtures.TeardownTestChain()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInterface(ctl)
	d := drafts.New(logger.New(fixtures.LogCategory), m)

	m.EXPECT().GetConfig().Return(nil, fault.NotInstantiated).Times(1)

	var reply contract.ConfigResponse
	err := d.Config(&drafts.ConfigArguments{}, &reply)
	assert.Equal(t, fault.NotInstantiated, err, "wrong error")
}
