// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/draft"
	"github.com/bitmark-inc/draftd/rpc/certificate"
	"github.com/bitmark-inc/draftd/zmqutil"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-identity", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "instantiate", "init", "dump-drafts", "dump", "recount":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                        (h)       - display this message\n\n")
		fmt.Printf("  version                     (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]          (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                          and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]           - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                          and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-identity [DIR]  (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                          and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                       (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                          for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                 (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  instantiate OWNER           (init)    - create the contract config owned by OWNER\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-drafts [FILE]          (dump)    - list identities with drafts as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  recount                               - recalculate draft_count from the stored drafts\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := writeConfiguration(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// indented JSON of the configuration with key material removed
func writeConfiguration(w io.Writer, options *Configuration) error {
	safe := *options
	safe.ClientRPC.PrivateKey = redact(safe.ClientRPC.PrivateKey)
	safe.HttpsRPC.PrivateKey = redact(safe.HttpsRPC.PrivateKey)

	b, err := json.Marshal(safe)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); nil != err {
		return err
	}
	out.WriteString("\n")
	_, err = out.WriteTo(w)
	return err
}

func redact(s string) string {
	if "" == s {
		return s
	}
	return "*redacted*"
}

// data command handler
// the storage pools are enabled so these commands can access and/or
// change the database
func processDataCommand(log *logger.L, arguments []string, c *contract.Contract) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "instantiate", "init":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing owner argument")
		}
		owner, err := account.AccountFromBase58(strings.TrimSpace(arguments[0]))
		if nil != err {
			exitwithstatus.Message("error in owner: %q  error: %s", arguments[0], err)
		}

		response, err := c.Instantiate(owner, &contract.InstantiateMsg{Owner: owner})
		if nil != err {
			log.Errorf("instantiate error: %s", err)
			exitwithstatus.Message("instantiate error: %s", err)
		}
		printAttributes(os.Stdout, response.Attributes)

	case "dump-drafts", "dump":
		output := "-"
		if len(arguments) > 0 {
			output = strings.TrimSpace(arguments[0])
		}

		fd := os.Stdout
		if "" != output && "-" != output {
			f, err := os.Create(output)
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", output, err)
			}
			defer f.Close()
			fd = f
		}

		if err := dumpDrafts(fd, c.Handles().Drafts); nil != err {
			exitwithstatus.Message("dump drafts error: %s", err)
		}

	case "recount":
		response, err := c.Recount()
		if nil != err {
			log.Errorf("recount error: %s", err)
			exitwithstatus.Message("recount error: %s", err)
		}
		printAttributes(os.Stdout, response.Attributes)

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// dumpEntry - one line of the dump-drafts listing
type dumpEntry struct {
	Identity       *account.Account `json:"identity"`
	Timestamp      uint64           `json:"timestamp"`
	ContentLength  int              `json:"content_length"`
	MetadataLength int              `json:"metadata_length"`
}

// write a JSON array of all stored drafts without their content
func dumpDrafts(w io.Writer, drafts *draft.Store) error {
	fmt.Fprintf(w, "[\n")
	first := true
	err := drafts.Map(func(identity *account.Account, d *draft.Draft) error {
		s, err := json.Marshal(dumpEntry{
			Identity:       identity,
			Timestamp:      d.Timestamp,
			ContentLength:  len(d.EncryptedContent),
			MetadataLength: len(d.EncryptedMetadata),
		})
		if nil != err {
			return err
		}
		if !first {
			fmt.Fprintf(w, ",\n")
		}
		first = false
		_, err = fmt.Fprintf(w, "  %s", s)
		return err
	})
	if nil != err {
		return err
	}
	if !first {
		fmt.Fprintf(w, "\n")
	}
	_, err = fmt.Fprintf(w, "]\n")
	return err
}

func printAttributes(w io.Writer, attributes interface{}) {
	b, err := json.MarshalIndent(attributes, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Fprintf(w, "%s\n", b)
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
