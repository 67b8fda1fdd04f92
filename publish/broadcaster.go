// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/draftd/messagebus"
	"github.com/bitmark-inc/draftd/util"
	"github.com/bitmark-inc/draftd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heart"
	beatParameter     = "beat"
	listenerQueueSize = 100
)

// broadcaster - PUB sockets fed from the message bus
type broadcaster struct {
	log     *logger.L
	chain   string
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, listen []*util.Connection, chain string) error {

	log := logger.New("broadcaster")

	brdc.log = log
	brdc.chain = chain

	log.Info("initialising…")

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, "broadcaster", privateKey, publicKey, listen)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.queue = messagebus.Bus.Broadcast.Chan(listenerQueueSize)

	return nil
}

// Run - wait for events and publish them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s", item.Command)
			if err := brdc.send(item.Command, item.Parameters...); nil != err {
				log.Errorf("send error: %s", err)
			}
		case <-heartbeat.C:
			if err := brdc.send(heartbeatCommand, []byte(beatParameter)); nil != err {
				log.Errorf("heartbeat send error: %s", err)
			}
		}
	}

	messagebus.Bus.Broadcast.Release(brdc.queue)

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send a multipart message: chain, command, parameters…
func (brdc *broadcaster) send(command string, parameters ...[]byte) error {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if err := sendMessage(socket, brdc.chain, command, parameters); nil != err {
			return err
		}
	}
	return nil
}

func sendMessage(socket *zmq.Socket, chain string, command string, parameters [][]byte) error {
	if _, err := socket.Send(chain, zmq.SNDMORE|zmq.DONTWAIT); nil != err {
		return err
	}

	if 0 == len(parameters) {
		_, err := socket.Send(command, zmq.DONTWAIT)
		return err
	}
	if _, err := socket.Send(command, zmq.SNDMORE|zmq.DONTWAIT); nil != err {
		return err
	}

	last := len(parameters) - 1
	for i, p := range parameters {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			return err
		}
	}
	return nil
}
