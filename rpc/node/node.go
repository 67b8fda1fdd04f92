// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/counter"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/draftd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Contract contract.Interface
	counter  *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, c contract.Interface) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Contract: c,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - node state, also served by HTTPS GET details
type InfoReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	Height  uint64 `json:"height"`
	Drafts  uint64 `json:"drafts"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Status - collect node state
//
// a nil contract or one that is not yet instantiated reports no drafts
func Status(c contract.Interface, start time.Time, version string, rpcs uint64) (*InfoReply, error) {
	reply := &InfoReply{
		Chain:   mode.ChainName(),
		Mode:    mode.String(),
		RPCs:    rpcs,
		Version: version,
		Uptime:  time.Since(start).String(),
	}

	if nil == c {
		return reply, nil
	}

	config, err := c.GetConfig()
	switch err {
	case nil:
		reply.Drafts = config.DraftCount
	case fault.NotInstantiated:
	default:
		return nil, err
	}
	reply.Height = c.Height()

	return reply, nil
}

// Info - enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Contract {
		return fault.NotInitialised
	}

	status, err := Status(node.Contract, node.Start, node.Version, node.counter.Uint64())
	if nil != err {
		node.Log.Errorf("info: %s", err)
		return err
	}
	*reply = *status

	return nil
}
