// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncedEntity is a server-confirmed snapshot of an entity. Instances
// are produced by the orchestrator from server responses and owned by
// the entity version store.
type SyncedEntity struct {
	// EntityType tags the feature-level entity kind, e.g. "habit".
	EntityType string `json:"entity_type"`

	// ID identifies the entity within its type.
	ID string `json:"id"`

	// Data is the server-side payload at this version.
	Data DataMap `json:"data,omitempty"`

	// Version is the monotonically increasing server version number,
	// incremented by the server on each accepted write.
	Version int64 `json:"version"`

	// IsDeleted marks a server-side soft delete.
	IsDeleted bool `json:"is_deleted"`

	// UpdatedAt is the server-side modification time.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityVersionMetadata is the per-entity sync bookkeeping persisted by
// the version store. Version numbers must survive process restarts so
// the conflict detector's comparison stays correct across sessions.
type EntityVersionMetadata struct {
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	LocalVersion  int64     `json:"local_version"`
	ServerVersion int64     `json:"server_version"`
	LastModified  time.Time `json:"last_modified"`

	// Checksum is an optional content hash of the last known payload,
	// used for cheap equality checks before a deep comparison.
	Checksum string `json:"checksum,omitempty"`

	// IsDirty is true iff at least one non-completed operation for this
	// entity remains in the queue.
	IsDirty bool `json:"is_dirty"`
}
