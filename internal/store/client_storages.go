// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Repositories is the set of client repositories bound to one querier.
type Repositories struct {
	Tasks      TaskRepository
	Lists      ListRepository
	Tags       TagRepository
	Tombstones TombstoneRepository
	SyncState  SyncStateRepository
}

// NewRepositories binds every repository to q.
func NewRepositories(q DBTX, log *logger.Logger) Repositories {
	return Repositories{
		Tasks:      NewTaskRepository(q, log),
		Lists:      NewListRepository(q, log),
		Tags:       NewTagRepository(q, log),
		Tombstones: NewTombstoneRepository(q, log),
		SyncState:  NewSyncStateRepository(q, log),
	}
}

// ClientStorages groups the client-side repositories over the local SQLite
// database. The embedded [Repositories] run on the connection pool; WithTx
// and WithForeignKeysRelaxed hand out repositories bound to a transaction or
// to a pinned connection.
type ClientStorages struct {
	Repositories

	db     *DB
	path   string
	logger *logger.Logger
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DB.Path, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Makes sure an inbox list exists.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := newClientStorages(db, cfg.DB.Path, logger)
	if _, err := s.EnsureInbox(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func newClientStorages(db *DB, path string, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Repositories: NewRepositories(db.DB, logger),
		db:           db,
		path:         path,
		logger:       logger,
	}
}

// Path returns the database file path.
func (s *ClientStorages) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

// DataVersion reports SQLite's data_version, which moves only when another
// process commits to the database file.
func (s *ClientStorages) DataVersion(ctx context.Context) (int64, error) {
	return s.db.DataVersion(ctx)
}

// ExecRaw runs an argument-less statement on the pool.
func (s *ClientStorages) ExecRaw(ctx context.Context, stmt string) error {
	return execRaw(ctx, s.db.DB, stmt)
}

// EnsureInbox returns the inbox list, creating it when the database has none.
func (s *ClientStorages) EnsureInbox(ctx context.Context) (models.List, error) {
	inbox, err := s.Lists.GetInbox(ctx)
	if err == nil {
		return inbox, nil
	}
	if !errors.Is(err, ErrNoInbox) {
		return models.List{}, fmt.Errorf("error reading inbox: %w", err)
	}

	inbox = models.NewInbox()
	if err := s.Lists.UpsertList(ctx, inbox); err != nil {
		return models.List{}, fmt.Errorf("error creating inbox: %w", err)
	}
	s.logger.Info().Str("list_id", inbox.ID.String()).Msg("created inbox list")

	return inbox, nil
}

// WithTx runs fn with repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *ClientStorages) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "ClientStorages.WithTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(ctx, NewRepositories(tx, s.logger)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "ClientStorages.WithTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

type mergeTarget struct {
	TaskRepository
	ListRepository
	TagRepository
}

// WithForeignKeysRelaxed pins one connection, switches foreign key
// enforcement off on it and runs fn with a [MergeTarget] bound to that
// connection. Enforcement is switched back on when fn returns or panics.
//
// The returned error only describes the guard: pinning the connection and
// toggling the pragma. fn's own error is returned when the guard succeeded.
// If enforcement cannot be restored the connection is discarded from the pool
// so no later query runs with enforcement off.
func (s *ClientStorages) WithForeignKeysRelaxed(ctx context.Context, fn func(ctx context.Context, target MergeTarget) error) (err error) {
	log := logger.FromContext(ctx)

	conn, err := s.db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "ClientStorages.WithForeignKeysRelaxed").Msg("failed to acquire connection")
		return fmt.Errorf("error acquiring connection: %w", err)
	}

	if err := execRaw(ctx, conn, pragmaForeignKeysOff); err != nil {
		conn.Close()
		return err
	}

	defer func() {
		// restore on a fresh context: ctx may already be cancelled
		restoreErr := execRaw(context.WithoutCancel(ctx), conn, pragmaForeignKeysOn)
		if restoreErr != nil {
			log.Error().Err(restoreErr).
				Str("func", "ClientStorages.WithForeignKeysRelaxed").
				Msg("failed to restore foreign keys, discarding connection")
			discardConn(conn)
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrForeignKeysNotRestored, restoreErr))
		}
		conn.Close()
	}()

	return fn(ctx, mergeTarget{
		TaskRepository: NewTaskRepository(conn, s.logger),
		ListRepository: NewListRepository(conn, s.logger),
		TagRepository:  NewTagRepository(conn, s.logger),
	})
}

// discardConn marks the driver connection bad so database/sql drops it
// instead of returning it to the pool.
func discardConn(conn *sql.Conn) {
	_ = conn.Raw(func(any) error {
		return driver.ErrBadConn
	})
}
