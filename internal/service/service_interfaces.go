// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-habit-sync/models"
)

//go:generate mockgen -source=service_interfaces.go -destination=../mock/service_mock.go -package=mock

// ConflictDetector decides whether local and server state for an entity
// disagree, and which fields differ. All methods are pure and perform
// no I/O.
type ConflictDetector interface {
	// HasConflict applies the version-first policy: a server version
	// strictly ahead of the local version is always a conflict
	// candidate regardless of content; equal versions conflict iff the
	// payloads differ structurally; a local version ahead of the server
	// is never a conflict (the server will catch up on the next cycle).
	HasConflict(local, server models.DataMap, localVersion, serverVersion int64) bool

	// ConflictingFields returns the fields that differ between the two
	// payloads. A field present on only one side is reported with a nil
	// value for the absent side. Identical mappings (and two nil maps)
	// yield an empty result.
	ConflictingFields(local, server models.DataMap) []models.ConflictingField
}

// ConflictResolver turns a detected conflict into a resolved payload by
// applying one of the five resolution strategies. All methods are
// synchronous and perform no I/O.
type ConflictResolver interface {
	// Resolve applies strategy to the operation's local payload and the
	// server payload. Equivalent to ResolveWithAncestor with no
	// ancestor snapshot.
	Resolve(op models.SyncOperation, serverData models.DataMap, strategy models.ResolutionStrategy) models.ConflictResolutionResult

	// ResolveWithAncestor is Resolve with the last known common
	// ancestor snapshot supplied for the merge strategy. A nil ancestor
	// degrades the merge to field-class heuristics.
	ResolveWithAncestor(op models.SyncOperation, serverData, ancestor models.DataMap, strategy models.ResolutionStrategy) models.ConflictResolutionResult

	// CreateMergePreview computes a non-destructive merge preview:
	// agreeing and one-sided fields are pre-merged, diverging fields
	// are listed for the caller to decide per field.
	CreateMergePreview(local, server models.DataMap) models.MergePreview

	// ApplyFieldResolutions produces the final payload from a preview
	// and per-field decisions. Fields the caller does not decide fall
	// back to the server value.
	ApplyFieldResolutions(preview models.MergePreview, resolutions map[string]models.FieldResolution) models.DataMap
}

// ThreeWayMerger performs a field-level merge of local and server
// payloads against a common ancestor snapshot.
type ThreeWayMerger interface {
	// Merge reconciles local and server against ancestor. Only fields
	// actually changed on both sides can conflict; those are settled by
	// per-field heuristics. A nil ancestor treats every diverging field
	// as changed on both sides.
	Merge(ancestor, local, server models.DataMap) models.DataMap
}

// SyncOrchestrator drives the end-to-end sync cycle and owns the
// pending-conflict set. At most one cycle runs at a time.
type SyncOrchestrator interface {
	// Init prepares the orchestrator for use: operations left
	// in-progress by a crashed cycle are reset to pending, the sync
	// cursor is restored, and the pending-conflict set is rebuilt from
	// conflicted queue entries.
	Init(ctx context.Context) error

	// ForceSync runs one full sync cycle. A call made while a cycle is
	// already in flight is a no-op.
	ForceSync(ctx context.Context) error

	// ResolveConflict applies strategy to a pending conflict. On
	// success the resolved payload is enqueued as a new corrective
	// operation and the conflict leaves the pending set; the manual
	// strategy leaves the conflict untouched and returns
	// [ErrManualResolutionRequired]. Callable at any time.
	ResolveConflict(ctx context.Context, conflict models.SyncConflict, strategy models.ResolutionStrategy) error

	// Status returns the current externally visible state.
	Status() models.SyncStatus

	// IsSyncing reports whether a cycle is currently in flight.
	IsSyncing() bool

	// Cursor returns the current position in the server's change
	// stream.
	Cursor() string

	// StatusStream returns the status broadcast channel. Delivery is
	// at-least-the-latest-state; intermediate states may be skipped and
	// publishing never blocks when no subscriber is reading.
	StatusStream() <-chan models.SyncStatus

	// PendingConflicts returns a snapshot of the unresolved conflicts.
	PendingConflicts() []models.SyncConflict

	// ConflictsStream returns the conflict-set broadcast channel with
	// current-set semantics.
	ConflictsStream() <-chan []models.SyncConflict

	// Dispose cancels any in-flight network call and closes the
	// broadcast channels. Unconfirmed queue entries are left pending.
	Dispose()
}

// SyncManager is the integration surface used by feature code. It hides
// orchestrator internals behind enqueue, stats, and passthrough calls.
type SyncManager interface {
	// QueueOperation creates an operation with a fresh client-generated
	// id, persists it to the queue, and marks the entity dirty. The
	// accepted payload shape is deliberately unconstrained; invalid
	// payloads are the server's to reject.
	QueueOperation(ctx context.Context, opType models.OperationType, entityType, entityID string, data models.DataMap) (models.SyncOperation, error)

	// SyncQueue returns every queued operation in enqueue order.
	SyncQueue(ctx context.Context) ([]models.SyncOperation, error)

	// PendingOperationsCount reports how many operations await
	// transmission (pending plus in-progress).
	PendingOperationsCount(ctx context.Context) (int, error)

	// SyncStats returns a loosely-typed snapshot of queue and
	// orchestrator state for UI indicators.
	SyncStats(ctx context.Context) (models.SyncStats, error)

	// ForceSync triggers one sync cycle via the orchestrator.
	ForceSync(ctx context.Context) error

	// ResolveConflict passes through to the orchestrator.
	ResolveConflict(ctx context.Context, conflict models.SyncConflict, strategy models.ResolutionStrategy) error

	// Status passes through to the orchestrator.
	Status() models.SyncStatus

	// StatusStream passes through to the orchestrator.
	StatusStream() <-chan models.SyncStatus

	// PendingConflicts passes through to the orchestrator.
	PendingConflicts() []models.SyncConflict

	// ConflictsStream passes through to the orchestrator.
	ConflictsStream() <-chan []models.SyncConflict
}
