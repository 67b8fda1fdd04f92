// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"strings"

	"github.com/urfave/cli"
)

func runInstantiate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkAccount(c, "sender", ErrMissingSender)
	if nil != err {
		return err
	}
	owner, err := checkOptionalAccount(c, "owner")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Instantiate(sender, owner)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkAccount(c, "sender", ErrMissingSender)
	if nil != err {
		return err
	}
	content := c.String("content")
	if "" == content {
		return ErrMissingContent
	}
	metadata := c.String("metadata")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.StoreDraft(sender, content, metadata)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkAccount(c, "sender", ErrMissingSender)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.DeleteDraft(sender)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAccount(c, "address", ErrMissingAddress)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDraft(address)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runConfig(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetConfig()
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runQuery(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	msg := strings.TrimSpace(c.String("msg"))
	if "" == msg {
		return ErrMissingMessage
	}
	if !json.Valid([]byte(msg)) {
		return ErrInvalidMessage
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	data, err := client.Query(json.RawMessage(msg))
	if nil != err {
		return err
	}
	return printJson(m.w, data)
}
