// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised          = ExistsError("already initialised")
	AlreadyInstantiated         = ExistsError("contract already instantiated")
	CannotDecodeAccount         = InvalidError("cannot decode account")
	CertificateFileExists       = ExistsError("certificate file already exists")
	ChecksumMismatch            = InvalidError("checksum mismatch")
	DraftNotFound               = NotFoundError("draft not found")
	IncompatibleDatabaseVersion = ProcessError("incompatible database version")
	InvalidChain                = InvalidError("invalid chain")
	InvalidCount                = InvalidError("invalid count")
	InvalidCursor               = InvalidError("invalid cursor")
	InvalidIdentity             = InvalidError("invalid identity")
	InvalidIpAddress            = InvalidError("invalid IP address")
	InvalidKeyLength            = InvalidError("invalid key length")
	InvalidKeyType              = InvalidError("invalid key type")
	InvalidMessage              = InvalidError("invalid message")
	InvalidPortNumber           = InvalidError("invalid port number")
	InvalidPrivateKeyFile       = InvalidError("invalid private key file")
	InvalidPublicKeyFile        = InvalidError("invalid public key file")
	InvalidStructPointer        = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists        = ExistsError("key file already exists")
	MissingIdentity             = InvalidError("missing identity")
	MissingParameters           = InvalidError("missing parameters")
	NotAvailableDuringShutdown  = ProcessError("not available during shutdown")
	NotInitialised              = NotFoundError("not initialised")
	NotInstantiated             = NotFoundError("contract not instantiated")
	NotPublicKey                = InvalidError("not a public key")
	PayloadTooLarge             = InvalidError("payload too large")
	RateLimiting                = ProcessError("rate limiting")
	RecordTruncated             = RecordError("record truncated")
	RecordHasExtraData          = RecordError("record has extra data")
	TransactionInUse            = ProcessError("transaction already in use")
	TransactionNotStarted       = ProcessError("transaction not started")
	UnknownMessage              = InvalidError("unknown message")
	WrongNetworkForIdentity     = InvalidError("wrong network for identity")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// StorageError - a failure of the underlying database
//
// wraps the database error with the operation that failed
type StorageError struct {
	Operation string
	Err       error
}

// NewStorageError - wrap a database error, nil stays nil
func NewStorageError(operation string, err error) error {
	if nil == err {
		return nil
	}
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %s", e.Operation, e.Err)
}

// Unwrap - expose the database error
func (e *StorageError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }

// IsErrStorage - a database failure or a corrupt record
func IsErrStorage(e error) bool {
	var x *StorageError
	return errors.As(e, &x) || IsErrRecord(e)
}
