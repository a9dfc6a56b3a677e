// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-sync/internal/adapter"
	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/store"
	"github.com/MKhiriev/go-habit-sync/internal/utils"
	"github.com/MKhiriev/go-habit-sync/models"
)

const (
	lastSyncCursorKey = "last_sync_cursor"

	// maxRetries bounds automatic retries of server-rejected operations;
	// past it the operation is parked as failed for caller inspection.
	maxRetries = 5
)

type syncOrchestrator struct {
	transport adapter.SyncTransport
	queue     store.OperationQueueRepository
	versions  store.EntityVersionRepository
	state     store.SyncStateRepository
	detector  ConflictDetector
	resolver  ConflictResolver
	cfg       config.ClientSync
	logger    *logger.Logger
	uuid      *utils.UUIDGenerator

	// now is swappable in tests
	now func() time.Time

	// defaultStrategy is applied when the server reports a conflict
	// mid-cycle; conflicts it cannot settle go to the pending set.
	defaultStrategy models.ResolutionStrategy

	// mu serializes queue and version-store mutation against the
	// in-flight cycle
	mu        sync.Mutex
	syncing   bool
	disposed  bool
	status    models.SyncStatus
	cursor    string
	conflicts map[string]models.SyncConflict

	cancelInFlight context.CancelFunc

	statusCh    chan models.SyncStatus
	conflictsCh chan []models.SyncConflict
}

// NewSyncOrchestrator wires the orchestrator to its collaborators. Call
// Init before the first sync and Dispose on shutdown. Unset tuning knobs
// fall back to workable defaults.
func NewSyncOrchestrator(storages *store.Storages, transport adapter.SyncTransport, detector ConflictDetector, resolver ConflictResolver, cfg config.ClientSync, log *logger.Logger) SyncOrchestrator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = time.Minute
	}
	return &syncOrchestrator{
		transport:       transport,
		queue:           storages.OperationQueue,
		versions:        storages.EntityVersions,
		state:           storages.SyncState,
		detector:        detector,
		resolver:        resolver,
		cfg:             cfg,
		logger:          log,
		uuid:            utils.NewUUIDGenerator(),
		now:             time.Now,
		defaultStrategy: models.StrategyMerge,
		status:          models.SyncIdle,
		conflicts:       make(map[string]models.SyncConflict),
		statusCh:        make(chan models.SyncStatus, 1),
		conflictsCh:     make(chan []models.SyncConflict, 1),
	}
}

func (o *syncOrchestrator) Init(ctx context.Context) error {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disposed {
		return ErrOrchestratorDisposed
	}

	// a cycle interrupted by a crash leaves operations in-progress;
	// they were never confirmed, so they go back to pending
	ops, err := o.queue.Drain(ctx)
	if err != nil {
		return fmt.Errorf("load queued operations: %w", err)
	}

	var interrupted []string
	for _, op := range ops {
		if op.Status == models.StatusInProgress {
			interrupted = append(interrupted, op.ID)
		}
	}
	if len(interrupted) > 0 {
		log.Info().
			Str("func", "syncOrchestrator.Init").
			Int("operations", len(interrupted)).
			Msg("resetting interrupted operations to pending")
		if err = o.queue.MarkStatusAll(ctx, interrupted, models.StatusPending); err != nil {
			return fmt.Errorf("reset interrupted operations: %w", err)
		}
	}

	cursor, err := o.state.GetValue(ctx, lastSyncCursorKey)
	if err != nil {
		return fmt.Errorf("restore sync cursor: %w", err)
	}
	o.cursor = cursor

	o.rebuildConflicts(ctx, ops)

	if len(o.conflicts) > 0 {
		o.status = models.SyncIdleWithConflicts
	} else {
		o.status = models.SyncIdle
	}
	o.publishStatusLocked()
	o.publishConflictsLocked()

	return nil
}

// rebuildConflicts restores the pending-conflict set from conflicted
// queue entries after a restart, using the last server-confirmed
// snapshot as the server side.
func (o *syncOrchestrator) rebuildConflicts(ctx context.Context, ops []models.SyncOperation) {
	log := logger.FromContext(ctx)

	for _, op := range ops {
		if op.Status != models.StatusConflicted {
			continue
		}
		if _, seen := o.conflicts[op.EntityKey()]; seen {
			continue
		}

		conflict := models.SyncConflict{
			EntityType:     op.EntityType,
			EntityID:       op.EntityID,
			LocalData:      op.Data,
			LocalVersion:   op.BaseVersion,
			LocalTimestamp: op.Timestamp,
		}

		snapshot, err := o.versions.GetEntity(ctx, op.EntityType, op.EntityID)
		if err == nil {
			conflict.ServerData = snapshot.Data
			conflict.ServerVersion = snapshot.Version
			conflict.ServerTimestamp = snapshot.UpdatedAt
		} else if !errors.Is(err, store.ErrEntityNotFound) {
			log.Err(err).
				Str("func", "syncOrchestrator.rebuildConflicts").
				Str("entity", op.EntityKey()).
				Msg("failed to load server snapshot for conflicted entity")
		}

		o.conflicts[op.EntityKey()] = conflict
	}
}

func (o *syncOrchestrator) ForceSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return ErrOrchestratorDisposed
	}
	if o.syncing {
		// a concurrent trigger while a cycle is in flight is a no-op
		o.mu.Unlock()
		return nil
	}
	o.syncing = true
	o.status = models.SyncInProgress
	o.publishStatusLocked()
	o.mu.Unlock()

	err := o.runCycle(ctx)

	o.mu.Lock()
	o.syncing = false
	o.cancelInFlight = nil
	if len(o.conflicts) > 0 {
		o.status = models.SyncIdleWithConflicts
	} else {
		o.status = models.SyncIdle
	}
	o.publishStatusLocked()
	o.publishConflictsLocked()
	o.mu.Unlock()

	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.ForceSync").
			Msg("sync cycle finished with error")
		return err
	}

	return nil
}

// runCycle performs one full sync: repeatedly sends bounded batches and
// applies responses until no due operations and no further pages remain.
func (o *syncOrchestrator) runCycle(ctx context.Context) error {
	for {
		sentOps, nextCursor, err := o.runBatch(ctx)
		if err != nil {
			return err
		}

		// stop when the queue yielded a short batch and the server has
		// no more pages
		if sentOps < o.cfg.BatchSize && nextCursor == "" {
			return nil
		}
	}
}

func (o *syncOrchestrator) runBatch(ctx context.Context) (int, string, error) {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	batch, err := o.queue.PendingBatch(ctx, o.cfg.BatchSize, o.now(), o.conflictedKeysLocked())
	if err != nil {
		o.mu.Unlock()
		return 0, "", fmt.Errorf("build pending batch: %w", err)
	}

	ids := make([]string, 0, len(batch))
	for _, op := range batch {
		ids = append(ids, op.ID)
	}
	if len(ids) > 0 {
		if err = o.queue.MarkStatusAll(ctx, ids, models.StatusInProgress); err != nil {
			o.mu.Unlock()
			return 0, "", fmt.Errorf("mark batch in progress: %w", err)
		}
	}

	req := models.BatchSyncRequest{
		Operations:      batch,
		ClientTimestamp: o.now(),
		LastSyncCursor:  o.cursor,
	}

	sendCtx, cancel := context.WithCancel(ctx)
	o.cancelInFlight = cancel
	o.mu.Unlock()

	resp, sendErr := o.transport.Send(sendCtx, req)
	cancel()

	o.mu.Lock()
	defer o.mu.Unlock()

	if sendErr != nil {
		// the batch was never confirmed; every operation goes back to
		// pending so a later cycle retries it
		if len(ids) > 0 {
			if resetErr := o.queue.MarkStatusAll(ctx, ids, models.StatusPending); resetErr != nil {
				log.Err(resetErr).
					Str("func", "syncOrchestrator.runBatch").
					Msg("failed to reset unconfirmed batch to pending")
			}
		}
		if adapter.IsTransient(sendErr) {
			o.backoffBatchLocked(ctx, batch)
		}
		return 0, "", fmt.Errorf("send sync batch: %w", sendErr)
	}

	opsByID := make(map[string]models.SyncOperation, len(batch))
	for _, op := range batch {
		opsByID[op.ID] = op
	}

	acked := make(map[string]struct{}, len(resp.Results))
	for _, result := range resp.Results {
		acked[result.OperationID] = struct{}{}
		op, known := opsByID[result.OperationID]
		if !known {
			log.Warn().
				Str("func", "syncOrchestrator.runBatch").
				Str("operation_id", result.OperationID).
				Msg("server result references an unknown operation")
			continue
		}
		o.handleResultLocked(ctx, op, result)
	}

	// an operation the server did not acknowledge was never confirmed;
	// it must not stay in-progress until a restart resets it
	var unacked []string
	for _, id := range ids {
		if _, ok := acked[id]; !ok {
			unacked = append(unacked, id)
		}
	}
	if len(unacked) > 0 {
		log.Warn().
			Str("func", "syncOrchestrator.runBatch").
			Int("operations", len(unacked)).
			Msg("resetting unacknowledged operations to pending")
		if err = o.queue.MarkStatusAll(ctx, unacked, models.StatusPending); err != nil {
			return 0, "", fmt.Errorf("reset unacknowledged operations: %w", err)
		}
	}

	for _, change := range resp.ServerChanges {
		o.applyServerChangeLocked(ctx, change)
	}

	// the cursor advances only after the whole batch is durably
	// committed, so an interrupted cycle resumes instead of skipping
	if resp.NextCursor != "" && resp.NextCursor != o.cursor {
		if err = o.state.SetValue(ctx, lastSyncCursorKey, resp.NextCursor); err != nil {
			return 0, "", fmt.Errorf("persist sync cursor: %w", err)
		}
		o.cursor = resp.NextCursor
	}

	return len(batch), resp.NextCursor, nil
}

func (o *syncOrchestrator) handleResultLocked(ctx context.Context, op models.SyncOperation, result models.SyncOperationResult) {
	log := logger.FromContext(ctx)

	switch {
	case result.Success:
		o.completeOperationLocked(ctx, op)

	case result.Conflict != nil:
		o.handleConflictLocked(ctx, op, *result.Conflict)

	default:
		// the server rejected the operation; retry with backoff until
		// the cap, then park it as failed for the caller to inspect
		if op.RetryCount+1 >= maxRetries {
			log.Warn().
				Str("func", "syncOrchestrator.handleResultLocked").
				Str("operation_id", op.ID).
				Str("server_error", result.Error).
				Msg("operation exceeded retry budget, marking failed")
			if err := o.queue.MarkStatus(ctx, op.ID, models.StatusFailed); err != nil {
				log.Err(err).
					Str("func", "syncOrchestrator.handleResultLocked").
					Str("operation_id", op.ID).
					Msg("failed to mark operation failed")
			}
			return
		}

		next := o.now().Add(o.backoffDelay(op.RetryCount))
		if err := o.queue.IncrementRetry(ctx, op.ID, next); err != nil {
			log.Err(err).
				Str("func", "syncOrchestrator.handleResultLocked").
				Str("operation_id", op.ID).
				Msg("failed to schedule operation retry")
		}
	}
}

func (o *syncOrchestrator) completeOperationLocked(ctx context.Context, op models.SyncOperation) {
	log := logger.FromContext(ctx)

	if err := o.queue.Remove(ctx, op.ID); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.completeOperationLocked").
			Str("operation_id", op.ID).
			Msg("failed to remove completed operation")
		return
	}

	remaining, err := o.queue.CountForEntity(ctx, op.EntityType, op.EntityID)
	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.completeOperationLocked").
			Str("entity", op.EntityKey()).
			Msg("failed to count remaining operations")
		return
	}
	if remaining == 0 {
		if err = o.versions.SetDirty(ctx, op.EntityType, op.EntityID, false); err != nil && !errors.Is(err, store.ErrEntityNotFound) {
			log.Err(err).
				Str("func", "syncOrchestrator.completeOperationLocked").
				Str("entity", op.EntityKey()).
				Msg("failed to clear dirty flag")
		}
	}
}

func (o *syncOrchestrator) handleConflictLocked(ctx context.Context, op models.SyncOperation, info models.ConflictInfo) {
	log := logger.FromContext(ctx)

	// compare against the version the operation was derived from, not
	// stored metadata: the server explicitly reported a conflict for this
	// write, and any fresher local bookkeeping must not talk us out of it
	localVersion := op.BaseVersion

	if !o.detector.HasConflict(op.Data, info.ServerData, localVersion, info.ServerVersion) {
		// the server's copy already agrees with ours; accept its state
		// and move on
		o.completeOperationLocked(ctx, op)
		o.upsertServerStateLocked(ctx, op.EntityType, op.EntityID, info)
		return
	}

	ancestor := o.ancestorLocked(ctx, op.EntityType, op.EntityID)
	result := o.resolver.ResolveWithAncestor(op, info.ServerData, ancestor, o.defaultStrategy)

	if result.Resolved {
		o.applyResolutionLocked(ctx, op, info, result.ResolvedData)
		return
	}

	// unresolved: park the operation and record the conflict for an
	// explicit ResolveConflict call
	if err := o.queue.MarkStatus(ctx, op.ID, models.StatusConflicted); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.handleConflictLocked").
			Str("operation_id", op.ID).
			Msg("failed to mark operation conflicted")
	}

	o.conflicts[op.EntityKey()] = models.SyncConflict{
		EntityType:      op.EntityType,
		EntityID:        op.EntityID,
		LocalData:       op.Data,
		ServerData:      info.ServerData,
		LocalVersion:    localVersion,
		ServerVersion:   info.ServerVersion,
		LocalTimestamp:  op.Timestamp,
		ServerTimestamp: info.ServerTimestamp,
	}
	o.publishConflictsLocked()

	log.Info().
		Str("func", "syncOrchestrator.handleConflictLocked").
		Str("entity", op.EntityKey()).
		Int64("server_version", info.ServerVersion).
		Msg("conflict awaits manual resolution")
}

// applyResolutionLocked replaces the conflicted operation with a
// corrective one carrying the resolved payload, based on the server's
// version so the next cycle cannot re-conflict on the same write.
func (o *syncOrchestrator) applyResolutionLocked(ctx context.Context, op models.SyncOperation, info models.ConflictInfo, resolvedData models.DataMap) {
	log := logger.FromContext(ctx)

	corrective := models.SyncOperation{
		ID:          o.uuid.Generate(),
		Type:        models.OperationUpdate,
		EntityType:  op.EntityType,
		EntityID:    op.EntityID,
		Data:        resolvedData,
		Timestamp:   o.now(),
		BaseVersion: info.ServerVersion,
	}

	if err := o.queue.Enqueue(ctx, corrective); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.applyResolutionLocked").
			Str("entity", op.EntityKey()).
			Msg("failed to enqueue corrective operation")
		return
	}

	if err := o.queue.Remove(ctx, op.ID); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.applyResolutionLocked").
			Str("operation_id", op.ID).
			Msg("failed to remove superseded operation")
	}

	o.upsertServerStateLocked(ctx, op.EntityType, op.EntityID, info)

	log.Debug().
		Str("func", "syncOrchestrator.applyResolutionLocked").
		Str("entity", op.EntityKey()).
		Str("corrective_id", corrective.ID).
		Msg("conflict auto-resolved")
}

func (o *syncOrchestrator) upsertServerStateLocked(ctx context.Context, entityType, entityID string, info models.ConflictInfo) {
	log := logger.FromContext(ctx)

	remaining, err := o.queue.CountForEntity(ctx, entityType, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.upsertServerStateLocked").
			Str("entity", entityType+"/"+entityID).
			Msg("failed to count remaining operations")
		remaining = 1
	}

	snapshot := models.SyncedEntity{
		EntityType: entityType,
		ID:         entityID,
		Data:       info.ServerData,
		Version:    info.ServerVersion,
		UpdatedAt:  info.ServerTimestamp,
	}
	if err = o.versions.Upsert(ctx, snapshot, remaining > 0); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.upsertServerStateLocked").
			Str("entity", entityType+"/"+entityID).
			Msg("failed to upsert server snapshot")
	}
}

// applyServerChangeLocked folds one server-side change into the version
// store. A change touching a locally dirty entity goes through the
// conflict pipeline first.
func (o *syncOrchestrator) applyServerChangeLocked(ctx context.Context, change models.SyncedEntity) {
	log := logger.FromContext(ctx)

	remaining, err := o.queue.CountForEntity(ctx, change.EntityType, change.ID)
	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.applyServerChangeLocked").
			Str("entity", change.EntityType+"/"+change.ID).
			Msg("failed to count queued operations for server change")
		return
	}
	stillDirty := remaining > 0

	if stillDirty {
		o.reconcileDirtyChangeLocked(ctx, change)
	}

	if err = o.versions.Upsert(ctx, change, stillDirty); err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.applyServerChangeLocked").
			Str("entity", change.EntityType+"/"+change.ID).
			Msg("failed to apply server change")
	}
}

// reconcileDirtyChangeLocked runs the conflict pipeline for a server
// change that landed on an entity with queued local edits.
func (o *syncOrchestrator) reconcileDirtyChangeLocked(ctx context.Context, change models.SyncedEntity) {
	localOp, found := o.latestQueuedOperationLocked(ctx, change.EntityType, change.ID)
	if !found {
		return
	}

	if !o.detector.HasConflict(localOp.Data, change.Data, localOp.BaseVersion, change.Version) {
		return
	}

	info := models.ConflictInfo{
		EntityType:      change.EntityType,
		EntityID:        change.ID,
		ServerData:      change.Data,
		ServerVersion:   change.Version,
		ServerTimestamp: change.UpdatedAt,
	}
	o.handleConflictLocked(ctx, localOp, info)
}

func (o *syncOrchestrator) latestQueuedOperationLocked(ctx context.Context, entityType, entityID string) (models.SyncOperation, bool) {
	log := logger.FromContext(ctx)

	ops, err := o.queue.Drain(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.latestQueuedOperationLocked").
			Msg("failed to load queued operations")
		return models.SyncOperation{}, false
	}

	var latest models.SyncOperation
	var found bool
	for _, op := range ops {
		if op.EntityType == entityType && op.EntityID == entityID && op.Status != models.StatusCompleted {
			latest = op
			found = true
		}
	}
	return latest, found
}

func (o *syncOrchestrator) ResolveConflict(ctx context.Context, conflict models.SyncConflict, strategy models.ResolutionStrategy) error {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disposed {
		return ErrOrchestratorDisposed
	}

	pending, ok := o.conflicts[conflict.Key()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrConflictNotFound, conflict.Key())
	}

	localOp := models.SyncOperation{
		Type:        models.OperationUpdate,
		EntityType:  pending.EntityType,
		EntityID:    pending.EntityID,
		Data:        pending.LocalData,
		Timestamp:   pending.LocalTimestamp,
		BaseVersion: pending.LocalVersion,
	}

	ancestor := o.ancestorLocked(ctx, pending.EntityType, pending.EntityID)
	result := o.resolver.ResolveWithAncestor(localOp, pending.ServerData, ancestor, strategy)
	if !result.Resolved {
		if strategy == models.StrategyManual {
			return ErrManualResolutionRequired
		}
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	// superseded conflicted operations for this entity leave the queue;
	// the corrective operation carries the resolved payload instead
	ops, err := o.queue.Drain(ctx)
	if err != nil {
		return fmt.Errorf("load queued operations: %w", err)
	}
	for _, op := range ops {
		if op.Status == models.StatusConflicted && op.EntityKey() == pending.Key() {
			if err = o.queue.Remove(ctx, op.ID); err != nil {
				return fmt.Errorf("remove superseded operation %s: %w", op.ID, err)
			}
		}
	}

	corrective := models.SyncOperation{
		ID:          o.uuid.Generate(),
		Type:        models.OperationUpdate,
		EntityType:  pending.EntityType,
		EntityID:    pending.EntityID,
		Data:        result.ResolvedData,
		Timestamp:   o.now(),
		BaseVersion: pending.ServerVersion,
	}
	if err = o.queue.Enqueue(ctx, corrective); err != nil {
		return fmt.Errorf("enqueue corrective operation: %w", err)
	}

	snapshot := models.SyncedEntity{
		EntityType: pending.EntityType,
		ID:         pending.EntityID,
		Data:       pending.ServerData,
		Version:    pending.ServerVersion,
		UpdatedAt:  pending.ServerTimestamp,
	}
	if err = o.versions.Upsert(ctx, snapshot, true); err != nil {
		return fmt.Errorf("record server snapshot: %w", err)
	}

	delete(o.conflicts, pending.Key())
	if len(o.conflicts) == 0 && !o.syncing {
		o.status = models.SyncIdle
		o.publishStatusLocked()
	}
	o.publishConflictsLocked()

	log.Info().
		Str("func", "syncOrchestrator.ResolveConflict").
		Str("entity", pending.Key()).
		Str("strategy", string(strategy)).
		Msg("conflict resolved")

	return nil
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *syncOrchestrator) StatusStream() <-chan models.SyncStatus {
	return o.statusCh
}

func (o *syncOrchestrator) PendingConflicts() []models.SyncConflict {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pendingConflictsLocked()
}

func (o *syncOrchestrator) ConflictsStream() <-chan []models.SyncConflict {
	return o.conflictsCh
}

func (o *syncOrchestrator) Dispose() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disposed {
		return
	}
	o.disposed = true

	if o.cancelInFlight != nil {
		o.cancelInFlight()
		o.cancelInFlight = nil
	}

	close(o.statusCh)
	close(o.conflictsCh)
}

// Cursor reports the current sync cursor. Used for stats.
func (o *syncOrchestrator) Cursor() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cursor
}

func (o *syncOrchestrator) IsSyncing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.syncing
}

// ancestorLocked returns the last server-confirmed payload for an
// entity, the best available common ancestor for a three-way merge. Nil
// when no snapshot has ever been recorded.
func (o *syncOrchestrator) ancestorLocked(ctx context.Context, entityType, entityID string) models.DataMap {
	snapshot, err := o.versions.GetEntity(ctx, entityType, entityID)
	if err != nil {
		return nil
	}
	return snapshot.Data
}

func (o *syncOrchestrator) conflictedKeysLocked() []string {
	if len(o.conflicts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(o.conflicts))
	for key := range o.conflicts {
		keys = append(keys, key)
	}
	return keys
}

func (o *syncOrchestrator) pendingConflictsLocked() []models.SyncConflict {
	conflicts := make([]models.SyncConflict, 0, len(o.conflicts))
	for _, c := range o.conflicts {
		conflicts = append(conflicts, c)
	}
	return conflicts
}

// backoffBatchLocked schedules every operation of an unconfirmed batch
// for a delayed retry after a transient transport failure.
func (o *syncOrchestrator) backoffBatchLocked(ctx context.Context, batch []models.SyncOperation) {
	log := logger.FromContext(ctx)

	for _, op := range batch {
		next := o.now().Add(o.backoffDelay(op.RetryCount))
		if err := o.queue.IncrementRetry(ctx, op.ID, next); err != nil {
			log.Err(err).
				Str("func", "syncOrchestrator.backoffBatchLocked").
				Str("operation_id", op.ID).
				Msg("failed to schedule retry after transport failure")
		}
	}
}

// backoffDelay returns base * 2^retryCount capped at the configured
// maximum.
func (o *syncOrchestrator) backoffDelay(retryCount int) time.Duration {
	delay := o.cfg.RetryBaseDelay
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay >= o.cfg.RetryMaxDelay {
			return o.cfg.RetryMaxDelay
		}
	}
	if delay > o.cfg.RetryMaxDelay {
		return o.cfg.RetryMaxDelay
	}
	return delay
}

// publishStatusLocked pushes the latest status without blocking: a slow
// or absent subscriber only ever misses intermediate states.
func (o *syncOrchestrator) publishStatusLocked() {
	if o.disposed {
		return
	}
	select {
	case <-o.statusCh:
	default:
	}
	select {
	case o.statusCh <- o.status:
	default:
	}
}

func (o *syncOrchestrator) publishConflictsLocked() {
	if o.disposed {
		return
	}
	select {
	case <-o.conflictsCh:
	default:
	}
	select {
	case o.conflictsCh <- o.pendingConflictsLocked():
	default:
	}
}
