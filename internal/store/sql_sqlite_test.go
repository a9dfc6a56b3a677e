// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/models"
)

// openSQLite connects to the database file at dsn and applies the
// embedded migrations, exactly the way NewStorages wires a client.
func openSQLite(t *testing.T, dsn string) *DB {
	t.Helper()

	db, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	return db
}

func TestSQLite_QueueSurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "sync.db")
	enqueuedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ops := []models.SyncOperation{
		{
			ID:          "op-1",
			Type:        models.OperationCreate,
			EntityType:  "habit",
			EntityID:    "h-1",
			Data:        models.DataMap{"name": "Morning Run", "streak": 3},
			Timestamp:   enqueuedAt,
			BaseVersion: 0,
		},
		{
			ID:          "op-2",
			Type:        models.OperationUpdate,
			EntityType:  "goal",
			EntityID:    "g-1",
			Data:        models.DataMap{"title": "Run a marathon", "progress": 40},
			Timestamp:   enqueuedAt.Add(time.Second),
			BaseVersion: 2,
		},
		{
			ID:          "op-3",
			Type:        models.OperationDelete,
			EntityType:  "task",
			EntityID:    "t-1",
			Timestamp:   enqueuedAt.Add(2 * time.Second),
			BaseVersion: 1,
		},
	}

	db := openSQLite(t, dsn)
	repo := NewOperationQueueRepository(db, logger.Nop())
	for _, op := range ops {
		require.NoError(t, repo.Enqueue(testContext(), op))
	}

	assertDrained := func(t *testing.T, drained []models.SyncOperation) {
		t.Helper()
		require.Len(t, drained, 3)
		for i, got := range drained {
			want := ops[i]
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Type, got.Type)
			assert.Equal(t, want.EntityType, got.EntityType)
			assert.Equal(t, want.EntityID, got.EntityID)
			assert.Equal(t, want.BaseVersion, got.BaseVersion)
			assert.Equal(t, models.StatusPending, got.Status)
			assert.True(t, got.Timestamp.Equal(want.Timestamp), "timestamp for %s", want.ID)
		}
		// JSON round-trip turns numbers into float64
		assert.Equal(t, "Morning Run", drained[0].Data["name"])
		assert.Equal(t, float64(3), drained[0].Data["streak"])
		assert.Equal(t, float64(40), drained[1].Data["progress"])
		assert.Empty(t, drained[2].Data)
	}

	drained, err := repo.Drain(testContext())
	require.NoError(t, err)
	assertDrained(t, drained)

	// a restart reopens the same file; insertion order must hold
	require.NoError(t, db.Close())

	db = openSQLite(t, dsn)
	defer db.Close()
	repo = NewOperationQueueRepository(db, logger.Nop())

	drained, err = repo.Drain(testContext())
	require.NoError(t, err)
	assertDrained(t, drained)
}

func TestSQLite_RetrySchedulingExcludesFromBatch(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "sync.db")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	db := openSQLite(t, dsn)
	defer db.Close()
	repo := NewOperationQueueRepository(db, logger.Nop())

	require.NoError(t, repo.Enqueue(testContext(), models.SyncOperation{
		ID:         "op-1",
		Type:       models.OperationUpdate,
		EntityType: "habit",
		EntityID:   "h-1",
		Data:       models.DataMap{"name": "Read"},
		Timestamp:  now,
	}))
	require.NoError(t, repo.Enqueue(testContext(), models.SyncOperation{
		ID:         "op-2",
		Type:       models.OperationUpdate,
		EntityType: "habit",
		EntityID:   "h-2",
		Data:       models.DataMap{"name": "Stretch"},
		Timestamp:  now,
	}))

	// op-1 backs off into the future and drops out of the batch
	require.NoError(t, repo.IncrementRetry(testContext(), "op-1", now.Add(time.Minute)))

	batch, err := repo.PendingBatch(testContext(), 10, now, nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "op-2", batch[0].ID)

	// once the attempt time passes it is eligible again
	batch, err = repo.PendingBatch(testContext(), 10, now.Add(2*time.Minute), nil)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, 1, batch[0].RetryCount)
}

func TestSQLite_MarkDirtyKeepsConfirmedVersion(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "sync.db")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	db := openSQLite(t, dsn)
	defer db.Close()
	repo := NewEntityVersionRepository(db, logger.Nop())

	// an entity never synced: queued edits leave the version at zero
	require.NoError(t, repo.MarkDirty(testContext(), "habit", "h-1", now))
	require.NoError(t, repo.MarkDirty(testContext(), "habit", "h-1", now.Add(time.Second)))

	meta, err := repo.Get(testContext(), "habit", "h-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), meta.LocalVersion)
	assert.Equal(t, int64(0), meta.ServerVersion)
	assert.True(t, meta.IsDirty)

	// a server-confirmed version is not disturbed by later local edits
	require.NoError(t, repo.Upsert(testContext(), models.SyncedEntity{
		EntityType: "habit",
		ID:         "h-1",
		Data:       models.DataMap{"name": "Hydrate"},
		Version:    3,
		UpdatedAt:  now,
	}, false))
	require.NoError(t, repo.MarkDirty(testContext(), "habit", "h-1", now.Add(time.Minute)))

	meta, err = repo.Get(testContext(), "habit", "h-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), meta.LocalVersion)
	assert.Equal(t, int64(3), meta.ServerVersion)
	assert.True(t, meta.IsDirty)

	snapshot, err := repo.GetEntity(testContext(), "habit", "h-1")
	require.NoError(t, err)
	assert.Equal(t, "Hydrate", snapshot.Data["name"])
	assert.Equal(t, int64(3), snapshot.Version)
}
