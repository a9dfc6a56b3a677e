// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
)

func TestSyncStateRepository_GetValue(t *testing.T) {
	t.Run("returns the stored value", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSyncStateRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM sync_state")).
			WithArgs("last_sync_cursor").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("cursor-42"))

		value, err := repo.GetValue(testContext(), "last_sync_cursor")
		require.NoError(t, err)
		assert.Equal(t, "cursor-42", value)
	})

	t.Run("unset key reads as empty, not an error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSyncStateRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM sync_state")).
			WithArgs("never_set").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		value, err := repo.GetValue(testContext(), "never_set")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSyncStateRepository(newDBFromSQL(db), logger.Nop())
		dbErr := errors.New("database is locked")

		mock.ExpectQuery(regexp.QuoteMeta("FROM sync_state")).
			WillReturnError(dbErr)

		_, err := repo.GetValue(testContext(), "last_sync_cursor")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestSyncStateRepository_SetValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSyncStateRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_state")).
		WithArgs("last_sync_cursor", "cursor-43").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetValue(testContext(), "last_sync_cursor", "cursor-43"))
	require.NoError(t, mock.ExpectationsWereMet())
}
