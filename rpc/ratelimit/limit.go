// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/draftd/fault"
)

// PayloadUnit - bytes of request payload costing one extra token
const PayloadUnit = 16 * 1024

// Limit - wait for one token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitPayload - wait for one token plus one per PayloadUnit of data
//
// oversize payloads still consume a single token before being rejected
func LimitPayload(limiter *rate.Limiter, size int, maximumSize int) error {
	if size < 0 || size > maximumSize {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.PayloadTooLarge
	}
	return wait(limiter, 1+size/PayloadUnit)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
