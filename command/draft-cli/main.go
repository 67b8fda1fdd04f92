// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "draft-cli"
	app.Usage = "store and retrieve encrypted drafts on a draftd"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " draftd RPC `HOST:PORT`",
			EnvVar: "DRAFTD_CONNECT",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " identity network `NETWORK` [bitmark|testing|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an identity key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "instantiate",
			Usage:     "create the contract config",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender identity `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner identity `ACCOUNT` [default: sender]",
				},
			},
			Action: runInstantiate,
		},
		{
			Name:      "store",
			Usage:     "store or replace the draft of an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender identity `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "content, d",
					Value: "",
					Usage: "*encrypted content `STRING`",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: " encrypted metadata `STRING`",
				},
			},
			Action: runStore,
		},
		{
			Name:      "delete",
			Usage:     "remove the draft of an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender identity `ACCOUNT`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "get",
			Usage:     "display the draft of an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*identity `ACCOUNT`",
				},
			},
			Action: runGet,
		},
		{
			Name:   "config",
			Usage:  "display the contract owner and draft count",
			Action: runConfig,
		},
		{
			Name:      "query",
			Usage:     "send a raw JSON query message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "msg, m",
					Value: "",
					Usage: "*query message `JSON`",
				},
			},
			Action: runQuery,
		},
		{
			Name:   "info",
			Usage:  "display draftd status",
			Action: runInfo,
		},
		{
			Name:      "watch",
			Usage:     "print events published by draftd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, p",
					Value: "127.0.0.1:2135",
					Usage: " publisher `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, k",
					Value: "",
					Usage: "*publisher public key `FILE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` events [0 = forever]",
				},
			},
			Action: runWatch,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = "bitmark"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			testnet: network != "bitmark",
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
