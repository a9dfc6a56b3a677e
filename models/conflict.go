// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResolutionStrategy selects how a detected conflict is resolved.
type ResolutionStrategy string

const (
	// StrategyServerWins resolves to the server payload verbatim.
	StrategyServerWins ResolutionStrategy = "server_wins"

	// StrategyClientWins resolves to the local payload verbatim.
	StrategyClientWins ResolutionStrategy = "client_wins"

	// StrategyLastWriteWins resolves to whichever full payload carries
	// the strictly later timestamp; ties favor the server.
	StrategyLastWriteWins ResolutionStrategy = "last_write_wins"

	// StrategyMerge performs a field-level three-way merge of local and
	// server payloads.
	StrategyMerge ResolutionStrategy = "merge"

	// StrategyManual never resolves automatically; the conflict stays
	// pending until a human decides per field.
	StrategyManual ResolutionStrategy = "manual"
)

// SyncConflict is a detected disagreement between local and server state
// for one entity. A conflict is immutable once created; resolving it
// produces a new payload and removes the conflict from the pending set.
type SyncConflict struct {
	EntityType      string    `json:"entity_type"`
	EntityID        string    `json:"entity_id"`
	LocalData       DataMap   `json:"local_data,omitempty"`
	ServerData      DataMap   `json:"server_data,omitempty"`
	LocalVersion    int64     `json:"local_version"`
	ServerVersion   int64     `json:"server_version"`
	LocalTimestamp  time.Time `json:"local_timestamp"`
	ServerTimestamp time.Time `json:"server_timestamp"`
}

// IsServerNewer reports whether the server version is strictly greater
// than the local version.
func (c SyncConflict) IsServerNewer() bool {
	return c.ServerVersion > c.LocalVersion
}

// IsLocalNewerByTime reports whether the local change happened strictly
// after the server-side change.
func (c SyncConflict) IsLocalNewerByTime() bool {
	return c.LocalTimestamp.After(c.ServerTimestamp)
}

// Key returns the (entityType, entityID) lookup key of the conflicted
// entity.
func (c SyncConflict) Key() string {
	return c.EntityType + "/" + c.EntityID
}

// ConflictingField describes one field that differs between local and
// server payloads. A nil value on one side means the field is absent
// (or explicitly null) there.
type ConflictingField struct {
	FieldName   string `json:"field_name"`
	LocalValue  any    `json:"local_value,omitempty"`
	ServerValue any    `json:"server_value,omitempty"`
}

// MergePreview is the result of a non-destructive merge computation:
// the fields that agreed are pre-merged, the rest are listed as
// conflicts for the caller (typically UI) to decide per field.
type MergePreview struct {
	MergedData DataMap            `json:"merged_data"`
	Conflicts  []ConflictingField `json:"conflicts,omitempty"`
}

// HasConflicts reports whether any field still needs a decision.
func (p MergePreview) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// ConflictCount returns the number of undecided fields.
func (p MergePreview) ConflictCount() int {
	return len(p.Conflicts)
}

// FieldResolution is one caller decision for a conflicting field in a
// merge preview. Exactly one of UseLocal, UseServer, or Custom should
// be set; Custom carries a caller-supplied replacement value.
type FieldResolution struct {
	UseLocal  bool `json:"use_local,omitempty"`
	UseServer bool `json:"use_server,omitempty"`
	Custom    any  `json:"custom,omitempty"`
}

// ConflictResolutionResult is the outcome of applying a resolution
// strategy to a conflict.
type ConflictResolutionResult struct {
	// Resolved is true when the strategy produced a payload.
	Resolved bool `json:"resolved"`

	// ResolvedData is the payload to apply when Resolved is true.
	ResolvedData DataMap `json:"resolved_data,omitempty"`

	// StrategyUsed records which strategy produced this result.
	StrategyUsed ResolutionStrategy `json:"strategy_used"`

	// Error explains why resolution did not happen when Resolved is
	// false (e.g. the manual strategy).
	Error string `json:"error,omitempty"`
}
