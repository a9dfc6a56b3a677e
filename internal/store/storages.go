// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
)

// Storages groups the sync storage repositories into a single value that
// can be passed around the service layer. All three share one SQLite
// database file so the queue, version metadata, and cursor stay
// consistent with each other.
type Storages struct {
	// OperationQueue is the durable queue of pending local mutations.
	OperationQueue OperationQueueRepository

	// EntityVersions tracks per-entity version metadata and the last
	// server-confirmed snapshot of each entity.
	EntityVersions EntityVersionRepository

	// SyncState is a small key-value store for orchestrator state such
	// as the sync cursor.
	SyncState SyncStateRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh
//     repositories sharing the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		OperationQueue: NewOperationQueueRepository(db, logger),
		EntityVersions: NewEntityVersionRepository(db, logger),
		SyncState:      NewSyncStateRepository(db, logger),
	}, nil
}
