// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: they are collected in a
// batch, are visible to reads of the same transaction and reach the
// database only on Commit.  Abort discards them.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. identity     = canonical account bytes (see account.Identity.Bytes)
// 4. count        = big endian uint64 (8 bytes)
// 5. varint       = util.ToVarint64
//
// Config:
//
//	C ++ "config"              - contract state singleton
//	                             data: varint(len(owner)) ++ owner ++ count
//
// Drafts:
//
//	D ++ identity              - one draft per identity
//	                             data: timestamp(count) ++ varint(len(content)) ++ content ++ varint(len(metadata)) ++ metadata
//
// Testing:
//
//	Z ++ key                   - testing data
//
// Version:
//
//	0x00 ++ "VERSION"          - database version (big endian uint32)
package storage
