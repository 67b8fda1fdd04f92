// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every failure a request can return is a single typed value, so
// callers compare with == and classify with the IsErrXXX functions:
// NotFound (no config, no draft), Exists (second instantiation),
// Invalid (bad message or identity), Process (rate limit, shutdown),
// Record (corrupt stored data) and StorageError (database failure).
package fault
