// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/logger"
)

const memstatsInterval = time.Minute

// memstats - log heap and goroutine figures until the daemon leaves Normal mode
func memstats() {
	log := logger.New("memory")

	ticker := time.NewTicker(memstatsInterval)
	defer ticker.Stop()

	for mode.IsNot(mode.Stopping) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("goroutines: %d  heap objects: %d  gc cycles: %d", runtime.NumGoroutine(), m.HeapObjects, m.NumGC)
		log.Infof("alloc: %d KiB  total alloc: %d KiB  sys: %d KiB", m.Alloc>>10, m.TotalAlloc>>10, m.Sys>>10)

		<-ticker.C
	}
}
