package models

// SyncStatus is the orchestrator's externally visible state.
type SyncStatus string

const (
	// SyncIdle means no sync cycle is running and no conflicts are pending.
	SyncIdle SyncStatus = "idle"

	// SyncInProgress means a sync cycle is currently in flight.
	SyncInProgress SyncStatus = "syncing"

	// SyncIdleWithConflicts means the last cycle finished but one or more
	// conflicts await manual resolution.
	SyncIdleWithConflicts SyncStatus = "idle_with_conflicts"
)

// Well-known keys of the stats mapping returned by GetSyncStats.
const (
	StatPendingOperations  = "pending_operations"
	StatFailedOperations   = "failed_operations"
	StatConflictedEntities = "conflicted_entities"
	StatSyncStatus         = "sync_status"
	StatIsSyncing          = "is_syncing"
	StatLastSyncCursor     = "last_sync_cursor"
)

// SyncStats is a loosely-typed snapshot of queue and orchestrator state
// for feature code to render "offline — N changes pending" style
// indicators. Keys are the Stat* constants.
type SyncStats map[string]any
