// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationType identifies the kind of mutation a queued operation carries.
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
)

// OperationStatus tracks where an operation is in its sync lifecycle.
type OperationStatus string

const (
	// StatusPending means the operation is waiting to be included in the
	// next outgoing batch.
	StatusPending OperationStatus = "pending"

	// StatusInProgress means the operation is part of a batch that is
	// currently in flight. If the process dies before a response is
	// committed, in-progress operations are reset to pending.
	StatusInProgress OperationStatus = "in_progress"

	// StatusCompleted means the server confirmed the operation; it is
	// removed from the queue shortly after.
	StatusCompleted OperationStatus = "completed"

	// StatusFailed means the server rejected the operation as invalid.
	// Failed operations are not retried automatically; they stay in the
	// queue for the caller to inspect or remove.
	StatusFailed OperationStatus = "failed"

	// StatusConflicted means the server reported a version conflict that
	// could not be auto-resolved. Conflicted operations are excluded from
	// outgoing batches until the conflict is resolved.
	StatusConflicted OperationStatus = "conflicted"
)

// SyncOperation is one pending local mutation awaiting transmission to
// the server. The ID is generated on the client and stays stable across
// retries so the server can deduplicate re-sent operations.
type SyncOperation struct {
	// ID is the unique, client-generated identifier of the operation.
	ID string `json:"id"`

	// Type is the mutation kind: create, update, or delete.
	Type OperationType `json:"type"`

	// EntityType tags the feature-level entity kind, e.g. "habit".
	EntityType string `json:"entity_type"`

	// EntityID identifies the entity within its type.
	EntityID string `json:"entity_id"`

	// Data is the entity payload. Optional for delete operations.
	Data DataMap `json:"data,omitempty"`

	// Timestamp is when the operation was created on the client.
	Timestamp time.Time `json:"timestamp"`

	// BaseVersion is the local entity version this operation was derived
	// from, or zero when the client has never seen a server version.
	BaseVersion int64 `json:"version,omitempty"`

	// Status is the current lifecycle state. Not sent to the server.
	Status OperationStatus `json:"-"`

	// RetryCount is the number of failed transmission attempts so far.
	// Not sent to the server.
	RetryCount int `json:"-"`
}

// EntityKey returns the (entityType, entityID) pair formatted as a
// single lookup key.
func (op SyncOperation) EntityKey() string {
	return op.EntityType + "/" + op.EntityID
}
