// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTaskNotFound is returned when a task lookup by id or prefix matches
	// nothing.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrListNotFound is returned when a list lookup matches nothing.
	ErrListNotFound = errors.New("list was not found")

	// ErrTagNotFound is returned when a tag lookup matches nothing.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrNoInbox is returned when the database holds no inbox list. It only
	// happens before [ClientStorages.EnsureInbox] ran.
	ErrNoInbox = errors.New("inbox list is missing")

	// ErrCannotDeleteInbox is returned when a local delete targets the inbox.
	ErrCannotDeleteInbox = errors.New("inbox list cannot be deleted")

	// ErrAmbiguousID is returned when an id prefix matches more than one row.
	ErrAmbiguousID = errors.New("id prefix is ambiguous")

	// ErrForeignKeysNotRestored is returned by
	// [ClientStorages.WithForeignKeysRelaxed] when enforcement could not be
	// switched back on. The pinned connection is discarded in that case.
	ErrForeignKeysNotRestored = errors.New("foreign key enforcement was not restored")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with
	// squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) or a PRAGMA fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails, including malformed stored timestamps.
	ErrScanningRow = errors.New("failed to scan row")
)
