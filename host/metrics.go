// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/prometheus/client_golang/prometheus"
)

// result labels
const (
	resultOK     = "ok"
	resultFailed = "failed"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "draftd",
			Subsystem: "host",
			Name:      "requests_total",
			Help:      "Number of requests executed, by kind and result.",
		},
		[]string{"kind", "result"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "draftd",
			Subsystem: "host",
			Name:      "request_duration_seconds",
			Help:      "Time spent executing requests, including commit.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

func countRequest(kind string, err error) {
	result := resultOK
	if nil != err {
		result = resultFailed
	}
	requestCounter.WithLabelValues(kind, result).Inc()
}
