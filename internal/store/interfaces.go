package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-habit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OperationQueueRepository is the durable, insertion-ordered queue of
// pending mutations. Enqueue must persist the operation before returning
// so that a crash immediately afterwards does not lose it. Operations for
// the same entity are always returned in the order they were enqueued.
type OperationQueueRepository interface {
	// Enqueue appends an operation to the queue. Any operation shape is
	// accepted; only a storage failure is an error.
	Enqueue(ctx context.Context, op models.SyncOperation) error

	// Drain returns every queued operation in enqueue order without
	// removing anything.
	Drain(ctx context.Context) ([]models.SyncOperation, error)

	// PendingBatch returns up to limit pending operations that are due
	// for transmission (their backoff window has elapsed as of now),
	// skipping entities listed in excludedEntities (conflicted entities
	// stay out of outgoing batches). Order is enqueue order.
	PendingBatch(ctx context.Context, limit int, now time.Time, excludedEntities []string) ([]models.SyncOperation, error)

	// Get returns a single operation by id, or [ErrOperationNotFound].
	Get(ctx context.Context, id string) (models.SyncOperation, error)

	// MarkStatus updates the status of an operation in place.
	MarkStatus(ctx context.Context, id string, status models.OperationStatus) error

	// MarkStatusAll updates the status of every listed operation.
	MarkStatusAll(ctx context.Context, ids []string, status models.OperationStatus) error

	// IncrementRetry bumps the retry counter, records the next attempt
	// time, and resets the operation to pending.
	IncrementRetry(ctx context.Context, id string, nextAttemptAt time.Time) error

	// Remove deletes an operation, normally after completion.
	Remove(ctx context.Context, id string) error

	// CountForEntity reports how many non-completed operations remain
	// queued for the given entity.
	CountForEntity(ctx context.Context, entityType, entityID string) (int, error)

	// CountByStatus returns the number of queued operations per status.
	CountByStatus(ctx context.Context) (map[models.OperationStatus]int, error)
}

// EntityVersionRepository persists per-entity version metadata and the
// last server-confirmed snapshot. Version numbers survive process
// restarts so the conflict detector's comparison stays correct across
// sessions.
type EntityVersionRepository interface {
	// Get returns the metadata for an entity, or [ErrEntityNotFound].
	Get(ctx context.Context, entityType, entityID string) (models.EntityVersionMetadata, error)

	// Upsert applies a server-confirmed snapshot: it sets the server
	// version, stores the payload and checksum, and sets the dirty flag
	// to stillDirty (false only when no queued operation remains for the
	// entity).
	Upsert(ctx context.Context, entity models.SyncedEntity, stillDirty bool) error

	// GetEntity returns the last server-confirmed snapshot for an
	// entity, or [ErrEntityNotFound].
	GetEntity(ctx context.Context, entityType, entityID string) (models.SyncedEntity, error)

	// MarkDirty records a local edit: sets the dirty flag and the
	// modification time. The version columns are untouched; local_version
	// always reflects the last server-confirmed version.
	MarkDirty(ctx context.Context, entityType, entityID string, modifiedAt time.Time) error

	// SetDirty overrides the dirty flag without touching versions.
	SetDirty(ctx context.Context, entityType, entityID string, dirty bool) error
}

// SyncStateRepository is a small durable key-value store for orchestrator
// state that must survive restarts, such as the sync cursor.
type SyncStateRepository interface {
	// GetValue returns the value stored under key, or empty string when
	// the key has never been set.
	GetValue(ctx context.Context, key string) (string, error)

	// SetValue stores value under key, replacing any previous value.
	SetValue(ctx context.Context, key, value string) error
}
