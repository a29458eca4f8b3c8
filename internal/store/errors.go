// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemWithoutID is returned when an item without a non-empty id is
	// saved.
	ErrItemWithoutID = errors.New("item has no id")

	// ErrUnknownCollection is returned when an item is saved into a
	// collection the sync engine does not know.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrVaultKeyNotFound is returned when no vault key blob was stored.
	ErrVaultKeyNotFound = errors.New("vault key not found")

	// ErrKeySaltNotFound is returned when no key derivation salt was stored.
	ErrKeySaltNotFound = errors.New("key salt not found")

	// ErrUnsupportedDriver is returned for drivers other than sqlite3 and pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Notebook and topic errors. Every topic operation either changes the
// store or returns one of these; none of them fails silently.
var (
	ErrNotebookNotFound   = errors.New("notebook not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrTopicExists        = errors.New("topic already exists")
	ErrEmptyTopic         = errors.New("topic name is empty")
	ErrNoteNotInTopic     = errors.New("note is not in topic")
	ErrNoteAlreadyInTopic = errors.New("note is already in topic")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan item rows")

	// ErrDecodingItem is returned when a stored item is not valid JSON.
	ErrDecodingItem = errors.New("failed to decode stored item")
)
