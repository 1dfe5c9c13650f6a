package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrStaleStatus is returned by a status compare-and-set when the row exists but
	// is no longer in the expected status.
	ErrStaleStatus = errors.New("stale change request status")
	// ErrStaleVersion is returned by a version compare-and-set when the company was
	// modified since it was read.
	ErrStaleVersion = errors.New("stale company version")
	// ErrDuplicatePending is returned when inserting a pending change request would
	// create a second pending request for the same entity and field.
	ErrDuplicatePending = errors.New("pending change request already exists")
)
