// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/util"
	"github.com/bitmark-inc/draftd/zmqutil"
)

// watchedEvent - one published event as printed
type watchedEvent struct {
	Chain string      `json:"chain"`
	Event *host.Event `json:"event"`
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	serverKeyFile := c.String("server-key")
	if "" == serverKeyFile {
		return ErrMissingServerKey
	}
	serverPublicKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}

	address, err := util.NewConnection(c.String("publisher"))
	if nil != err {
		return err
	}

	// the publisher accepts any client key
	publicKey, privateKey, err := zmqutil.NewKeyPair()
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(address, serverPublicKey, privateKey, publicKey, "")
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed to: %s\n", c.String("publisher"))
	}

	limit := c.Int("count")
	for n := 0; 0 == limit || n < limit; {
		frames, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		event, err := parseEvent(frames)
		if nil != err {
			return err
		}
		if nil == event {
			continue // heartbeat
		}
		if err := printJson(m.w, event); nil != err {
			return err
		}
		n += 1
	}
	return nil
}

// decode a published message: chain, command, parameters...
// returns nil for anything other than a contract event
func parseEvent(frames [][]byte) (*watchedEvent, error) {
	if len(frames) < 2 {
		return nil, fault.InvalidMessage
	}
	if host.EventCommand != string(frames[1]) {
		return nil, nil
	}
	if 3 != len(frames) {
		return nil, fault.InvalidMessage
	}

	var event host.Event
	if err := json.Unmarshal(frames[2], &event); nil != err {
		return nil, err
	}
	return &watchedEvent{
		Chain: string(frames[0]),
		Event: &event,
	}, nil
}
