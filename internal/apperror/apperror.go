// Package apperror defines the error taxonomy shared by the service and both
// persistence backends. Every failure in the system is one of these types;
// nothing here is fatal to the process — callers decide whether to retry.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationCode identifies which business rule a draft record broke.
type ValidationCode string

const (
	OutOfRange       ValidationCode = "out_of_range"
	NegativeQuantity ValidationCode = "negative_quantity"
	DuplicateLot     ValidationCode = "duplicate_lot"
	InvalidField     ValidationCode = "invalid_field"
)

// ValidationError reports a rejected harvest draft. Always recoverable,
// surfaced to the caller immediately, never retried automatically.
type ValidationError struct {
	Code   ValidationCode
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Detail)
}

func NewValidation(code ValidationCode, field, detail string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Detail: detail}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Store names used by PartialPersistenceError.
const (
	StoreLocal  = "local"
	StoreRemote = "remote"
)

// PartialPersistenceError means one durable side accepted the write and the
// other did not. The surviving copy stays visible; the caller owns the retry
// of the failed side — there is no automatic rollback.
type PartialPersistenceError struct {
	Store string // which side failed: StoreLocal or StoreRemote
	Op    string // "register" or "delete"
	Err   error
}

func (e *PartialPersistenceError) Error() string {
	return fmt.Sprintf("%s succeeded partially: %s store failed: %v", e.Op, e.Store, e.Err)
}

func (e *PartialPersistenceError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup or delete against an unknown lot.
type NotFoundError struct {
	LotID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lot %q not found", e.LotID)
}

// ConnectionError wraps a remote database failure (network, auth, driver).
// Expected and recoverable: the service degrades to local-only mode.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("remote store unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// CorruptStoreError means the local file exists but did not parse. Policy:
// report it and start from an empty set — never silently rewrite the file.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("local store %s is unreadable: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }
