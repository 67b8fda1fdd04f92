// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/draftd/fault"
)

// Connection - a validated IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse "IP:PORT", "[IPv6]:PORT" or "*:PORT"
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	ip := net.IPv6unspecified
	if "*" != host {
		ip = net.ParseIP(host)
		if nil == ip {
			return nil, fault.InvalidIpAddress
		}
	}

	numericPort, err := strconv.Atoi(port)
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	return &Connection{
		ip:   ip,
		port: numericPort,
	}, nil
}

// NewConnections - convert a list of strings
func NewConnections(hostPorts []string) ([]*Connection, error) {
	c := make([]*Connection, 0, len(hostPorts))
	for _, hostPort := range hostPorts {
		if "" == hostPort {
			continue
		}
		conn, err := NewConnection(hostPort)
		if nil != err {
			return nil, err
		}
		c = append(c, conn)
	}
	return c, nil
}

// CanonicalIPandPort - canonical "IP:PORT" with an optional scheme prefix
//
// second value is true for IPv6
//
// examples:
//
//	IPv4:  127.0.0.1:1234
//	IPv6:  [::1]:1234
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// Network - "tcp4" or "tcp6" to suit net.Listen
func (conn *Connection) Network() string {
	if nil != conn.ip.To4() {
		return "tcp4"
	}
	return "tcp6"
}
