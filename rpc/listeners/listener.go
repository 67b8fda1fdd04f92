// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"

	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/logger"
)

const minConnectionCount = 1

// Listener - a started network server
type Listener interface {
	Serve() error
	Stop() error
}

// one configured listen address resolved to a network
type endpoint struct {
	network string
	address string
}

// parseEndpoints - validate "IP:PORT", "[IPv6]:PORT" and "*:PORT"
//
// the wildcard form listens on both tcp4 and tcp6
func parseEndpoints(name string, addrs []string, log *logger.L) ([]endpoint, error) {
	endpoints := make([]endpoint, 0, len(addrs))
	for _, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err || "" == port {
			log.Errorf("%s: invalid listen address: %q", name, listen)
			return nil, fault.InvalidIpAddress
		}

		if "*" == host {
			endpoints = append(endpoints, endpoint{
				network: "tcp",
				address: net.JoinHostPort("::", port),
			})
			continue
		}

		ip := net.ParseIP(host)
		if nil == ip {
			log.Errorf("%s: invalid listen IP: %q", name, host)
			return nil, fault.InvalidIpAddress
		}

		network := "tcp6"
		if nil != ip.To4() {
			network = "tcp4"
		}
		endpoints = append(endpoints, endpoint{
			network: network,
			address: listen,
		})
	}

	return endpoints, nil
}
