// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// DB wraps the SQLite connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// DBTX is the query surface shared by *sql.DB, *sql.Tx and *sql.Conn.
// Repositories are built over it so the same code runs pooled, inside a
// transaction, or on a pinned connection.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// DataVersion returns SQLite's data_version for the pooled connection. The
// value changes only when another connection (another process) commits.
func (db *DB) DataVersion(ctx context.Context) (int64, error) {
	var v int64
	if err := db.QueryRowContext(ctx, pragmaDataVersion).Scan(&v); err != nil {
		return 0, fmt.Errorf("%w: data_version: %w", ErrExecutingQuery, err)
	}
	return v, nil
}

// execRaw runs a statement that takes no arguments, such as a PRAGMA.
func execRaw(ctx context.Context, q DBTX, stmt string) error {
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.execRaw").
			Str("stmt", stmt).
			Msg("failed to execute raw statement")
		return fmt.Errorf("%w: %s: %w", ErrExecutingStatement, stmt, err)
	}
	return nil
}

// inTx runs fn inside a transaction when q can start one. When q already is
// a transaction, fn runs on it directly.
func inTx(ctx context.Context, q DBTX, fn func(q DBTX) error) error {
	beginner, ok := q.(txBeginner)
	if !ok {
		return fn(q)
	}

	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
