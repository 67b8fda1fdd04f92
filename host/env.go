// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"time"

	"github.com/bitmark-inc/draftd/account"
	"github.com/bitmark-inc/draftd/fault"
	"github.com/bitmark-inc/draftd/mode"
)

// BlockInfo - position of the current request
type BlockInfo struct {
	Height uint64
	Time   time.Time
}

// Env - environment supplied to every handler
type Env struct {
	Block BlockInfo
}

// Timestamp - request time in whole seconds, times before the epoch are zero
func (env Env) Timestamp() uint64 {
	seconds := env.Block.Time.Unix()
	if seconds < 0 {
		return 0
	}
	return uint64(seconds)
}

// CheckNetwork - identity must carry the network flag of the running chain
func CheckNetwork(identity *account.Account) error {
	if nil == identity || nil == identity.AccountInterface {
		return fault.MissingIdentity
	}
	if identity.IsTesting() != mode.IsTesting() {
		return fault.WrongNetworkForIdentity
	}
	return nil
}

// MessageInfo - who sent the request
type MessageInfo struct {
	Sender *account.Account
}

// Attribute - one key/value of an action record
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response - result of a mutating request
type Response struct {
	Attributes []Attribute `json:"attributes"`
	Data       []byte      `json:"data,omitempty"`
}

// NewResponse - an empty response
func NewResponse() *Response {
	return &Response{
		Attributes: []Attribute{},
	}
}

// AddAttribute - append an attribute, returns the response for chaining
func (r *Response) AddAttribute(key string, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{
		Key:   key,
		Value: value,
	})
	return r
}

// Attribute - value of the first attribute with key
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if key == a.Key {
			return a.Value, true
		}
	}
	return "", false
}

// Event - broadcast record of a committed request
type Event struct {
	Height     uint64      `json:"height"`
	Timestamp  uint64      `json:"timestamp"`
	Attributes []Attribute `json:"attributes"`
}
