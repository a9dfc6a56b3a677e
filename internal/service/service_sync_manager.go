// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/store"
	"github.com/MKhiriev/go-habit-sync/internal/utils"
	"github.com/MKhiriev/go-habit-sync/models"
)

type syncManager struct {
	queue        store.OperationQueueRepository
	versions     store.EntityVersionRepository
	orchestrator SyncOrchestrator
	uuid         *utils.UUIDGenerator
	logger       *logger.Logger

	now func() time.Time
}

// NewSyncManager returns the integration facade used by feature code.
func NewSyncManager(storages *store.Storages, orchestrator SyncOrchestrator, log *logger.Logger) SyncManager {
	return &syncManager{
		queue:        storages.OperationQueue,
		versions:     storages.EntityVersions,
		orchestrator: orchestrator,
		uuid:         utils.NewUUIDGenerator(),
		logger:       log,
		now:          time.Now,
	}
}

func (m *syncManager) QueueOperation(ctx context.Context, opType models.OperationType, entityType, entityID string, data models.DataMap) (models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	now := m.now()

	var baseVersion int64
	meta, err := m.versions.Get(ctx, entityType, entityID)
	switch {
	case err == nil:
		baseVersion = meta.LocalVersion
	case errors.Is(err, store.ErrEntityNotFound):
		// first operation for this entity
	default:
		return models.SyncOperation{}, fmt.Errorf("load entity version: %w", err)
	}

	op := models.SyncOperation{
		ID:          m.uuid.Generate(),
		Type:        opType,
		EntityType:  entityType,
		EntityID:    entityID,
		Data:        data,
		Timestamp:   now,
		BaseVersion: baseVersion,
		Status:      models.StatusPending,
	}

	if err = m.queue.Enqueue(ctx, op); err != nil {
		return models.SyncOperation{}, fmt.Errorf("enqueue operation: %w", err)
	}

	if err = m.versions.MarkDirty(ctx, entityType, entityID, now); err != nil {
		// the operation is durably queued; dirty bookkeeping is
		// recoverable on the next cycle
		log.Err(err).
			Str("func", "syncManager.QueueOperation").
			Str("entity", op.EntityKey()).
			Msg("failed to mark entity dirty")
	}

	log.Debug().
		Str("func", "syncManager.QueueOperation").
		Str("operation_id", op.ID).
		Str("entity", op.EntityKey()).
		Str("type", string(opType)).
		Msg("operation queued")

	return op, nil
}

func (m *syncManager) SyncQueue(ctx context.Context) ([]models.SyncOperation, error) {
	return m.queue.Drain(ctx)
}

func (m *syncManager) PendingOperationsCount(ctx context.Context) (int, error) {
	counts, err := m.queue.CountByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("count queued operations: %w", err)
	}

	return counts[models.StatusPending] + counts[models.StatusInProgress], nil
}

func (m *syncManager) SyncStats(ctx context.Context) (models.SyncStats, error) {
	counts, err := m.queue.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count queued operations: %w", err)
	}

	return models.SyncStats{
		models.StatPendingOperations:  counts[models.StatusPending] + counts[models.StatusInProgress],
		models.StatFailedOperations:   counts[models.StatusFailed],
		models.StatConflictedEntities: len(m.orchestrator.PendingConflicts()),
		models.StatSyncStatus:         m.orchestrator.Status(),
		models.StatIsSyncing:          m.orchestrator.IsSyncing(),
		models.StatLastSyncCursor:     m.orchestrator.Cursor(),
	}, nil
}

func (m *syncManager) ForceSync(ctx context.Context) error {
	return m.orchestrator.ForceSync(ctx)
}

func (m *syncManager) ResolveConflict(ctx context.Context, conflict models.SyncConflict, strategy models.ResolutionStrategy) error {
	return m.orchestrator.ResolveConflict(ctx, conflict, strategy)
}

func (m *syncManager) Status() models.SyncStatus {
	return m.orchestrator.Status()
}

func (m *syncManager) StatusStream() <-chan models.SyncStatus {
	return m.orchestrator.StatusStream()
}

func (m *syncManager) PendingConflicts() []models.SyncConflict {
	return m.orchestrator.PendingConflicts()
}

func (m *syncManager) ConflictsStream() <-chan []models.SyncConflict {
	return m.orchestrator.ConflictsStream()
}
