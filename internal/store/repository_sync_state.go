// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) GetValue(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := r.DB.QueryRowContext(ctx, getSyncStateValue, key)

	scanErr := row.Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		// a key that was never set reads as empty
		return "", nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "syncStateRepository.GetValue").
			Str("key", key).
			Msg("failed to scan sync state row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return value, nil
}

func (r *syncStateRepository) SetValue(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setSyncStateValue, key, value); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetValue").
			Str("key", key).
			Msg("failed to store sync state value")
		return fmt.Errorf("failed to store sync state value (key=%s): %w", key, err)
	}

	return nil
}
