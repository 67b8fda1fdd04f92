// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/command/draft-cli/rpccalls"
)

// decode a required base58 identity flag
func checkAccount(c *cli.Context, name string, missing error) (*account.Account, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return nil, missing
	}
	return account.AccountFromBase58(s)
}

// decode an optional base58 identity flag
func checkOptionalAccount(c *cli.Context, name string) (*account.Account, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return nil, nil
	}
	return account.AccountFromBase58(s)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}
