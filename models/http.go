// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BatchSyncRequest is sent by the client to push a bounded batch of
// pending operations and pull server-side changes it has not yet seen.
type BatchSyncRequest struct {
	// Operations is the ordered batch of pending mutations. Order is
	// significant: operations for the same entity must be applied in
	// the order they were enqueued on the client.
	Operations []SyncOperation `json:"operations"`

	// ClientTimestamp is the client's wall-clock time when the batch
	// was built, in RFC 3339 / ISO-8601 form.
	ClientTimestamp time.Time `json:"client_timestamp"`

	// LastSyncCursor is the opaque position in the server's change
	// stream reached by the previous cycle. Absent on the first sync.
	LastSyncCursor string `json:"last_sync_cursor,omitempty"`
}

// BatchSyncResponse is the server's reply to a BatchSyncRequest.
type BatchSyncResponse struct {
	// Success reports overall batch health. Individual operations may
	// still have failed; consult Results.
	Success bool `json:"success"`

	// Results carries one entry per submitted operation, keyed by
	// operation id.
	Results []SyncOperationResult `json:"results"`

	// ServerChanges lists entities changed on the server that the
	// client has not yet seen, starting from LastSyncCursor.
	ServerChanges []SyncedEntity `json:"server_changes,omitempty"`

	// NextCursor is the position to resume from on the next cycle.
	// Absent when no further pages are available.
	NextCursor string `json:"next_cursor,omitempty"`

	// ServerTimestamp is the server's wall-clock time for the response.
	ServerTimestamp time.Time `json:"server_timestamp"`
}

// SyncOperationResult is the per-operation outcome within a batch.
type SyncOperationResult struct {
	// OperationID echoes the client-generated id of the operation.
	OperationID string `json:"operation_id"`

	// Success is true when the server accepted and applied the operation.
	Success bool `json:"success"`

	// ServerID is the server-assigned identifier, populated for creates
	// when the server allocates its own id.
	ServerID string `json:"server_id,omitempty"`

	// Error is the server's rejection message when Success is false and
	// no conflict is reported. Validation errors are not retried.
	Error string `json:"error,omitempty"`

	// Conflict is populated when the operation failed because the
	// server holds state the client has not seen.
	Conflict *ConflictInfo `json:"conflict,omitempty"`
}

// ConflictInfo is the server-side half of a version conflict reported
// for a single operation.
type ConflictInfo struct {
	EntityType      string    `json:"entity_type"`
	EntityID        string    `json:"entity_id"`
	ServerData      DataMap   `json:"server_data,omitempty"`
	ServerVersion   int64     `json:"server_version"`
	ServerTimestamp time.Time `json:"server_timestamp"`
}
