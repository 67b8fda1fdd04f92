// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/util"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of addresses
//
// IPv4 and IPv6 addresses are bound to separate sockets, either
// result is nil when no address of that family is listed
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*zmq.Socket, *zmq.Socket, error) {
	var sockets [2]*zmq.Socket // IPv4, IPv6

	closeAll := func() {
		for _, s := range sockets {
			if nil != s {
				_ = s.Close()
			}
		}
	}

	for i, address := range listen {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")

		family := 0
		if v6 {
			family = 1
		}

		if nil == sockets[family] {
			s, err := NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			sockets[family] = s
		}

		if err := sockets[family].Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}

	return sockets[0], sockets[1], nil
}

// NewServerSocket - a CURVE server socket that accepts any client key
// on its ZAP domain and identifies itself by its public key
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	AllowAnyClient(zapDomain)

	err = configure(socket,
		func() error { return socket.SetCurveServer(1) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetZapDomain(zapDomain) },
		func() error { return socket.SetIdentity(string(publicKey)) },
		func() error { return socket.SetIpv6(v6) },
	)
	if nil != err {
		return nil, err
	}
	return socket, nil
}

// NewSubscriber - connect a SUB socket to a publisher with a known
// public key, receiving only messages starting with prefix
func NewSubscriber(address *util.Connection, serverPublicKey []byte, privateKey []byte, publicKey []byte, prefix string) (*zmq.Socket, error) {
	if keyLength != len(serverPublicKey) || keyLength != len(publicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if keyLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	connectTo, v6 := address.CanonicalIPandPort("tcp://")

	err = configure(socket,
		func() error { return socket.SetCurveServerkey(string(serverPublicKey)) },
		func() error { return socket.SetCurvePublickey(string(publicKey)) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetSubscribe(prefix) },
		func() error { return socket.Connect(connectTo) },
	)
	if nil != err {
		return nil, err
	}
	return socket, nil
}

// configure - apply the heartbeat settings then options in order,
// closing the socket on the first error
func configure(socket *zmq.Socket, options ...func() error) error {
	heartbeat := []func() error{
		func() error { return socket.SetHeartbeatIvl(heartbeatInterval) },
		func() error { return socket.SetHeartbeatTimeout(heartbeatTimeout) },
		func() error { return socket.SetHeartbeatTtl(heartbeatTTL) },
	}
	for _, f := range append(heartbeat, options...) {
		if err := f(); nil != err {
			_ = socket.Close()
			return err
		}
	}
	return nil
}
