// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-sync/models"
)

func newTestResolver() ConflictResolver {
	return NewConflictResolver(NewThreeWayMerger())
}

func testOperation(data models.DataMap, ts time.Time) models.SyncOperation {
	return models.SyncOperation{
		ID:         "op-1",
		Type:       models.OperationUpdate,
		EntityType: "habit",
		EntityID:   "h-1",
		Data:       data,
		Timestamp:  ts,
	}
}

// ── Resolve: strategies ──────────────────────────────────────────────────────

func TestConflictResolver_ServerWins(t *testing.T) {
	resolver := newTestResolver()

	op := testOperation(models.DataMap{"name": "Local"}, time.Now())
	serverData := models.DataMap{"name": "Server"}

	result := resolver.Resolve(op, serverData, models.StrategyServerWins)
	require.True(t, result.Resolved)
	assert.Equal(t, models.StrategyServerWins, result.StrategyUsed)
	assert.True(t, serverData.Equal(result.ResolvedData))
}

func TestConflictResolver_ClientWins(t *testing.T) {
	resolver := newTestResolver()

	localData := models.DataMap{"name": "Local"}
	op := testOperation(localData, time.Now())

	result := resolver.Resolve(op, models.DataMap{"name": "Server"}, models.StrategyClientWins)
	require.True(t, result.Resolved)
	assert.Equal(t, models.StrategyClientWins, result.StrategyUsed)
	assert.True(t, localData.Equal(result.ResolvedData))
}

func TestConflictResolver_LastWriteWins(t *testing.T) {
	resolver := newTestResolver()
	serverTS := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	serverData := models.DataMap{
		"name":      "Server",
		"updatedAt": serverTS.Format(time.RFC3339),
	}

	t.Run("strictly later local payload wins", func(t *testing.T) {
		op := testOperation(models.DataMap{"name": "Local"}, serverTS.Add(time.Minute))

		result := resolver.Resolve(op, serverData, models.StrategyLastWriteWins)
		require.True(t, result.Resolved)
		assert.Equal(t, "Local", result.ResolvedData["name"])
	})

	t.Run("strictly later server payload wins", func(t *testing.T) {
		op := testOperation(models.DataMap{"name": "Local"}, serverTS.Add(-time.Minute))

		result := resolver.Resolve(op, serverData, models.StrategyLastWriteWins)
		require.True(t, result.Resolved)
		assert.Equal(t, "Server", result.ResolvedData["name"])
	})

	t.Run("ties favor server", func(t *testing.T) {
		op := testOperation(models.DataMap{"name": "Local"}, serverTS)

		result := resolver.Resolve(op, serverData, models.StrategyLastWriteWins)
		require.True(t, result.Resolved)
		assert.Equal(t, "Server", result.ResolvedData["name"])
	})

	t.Run("server without comparable timestamp keeps the durable record", func(t *testing.T) {
		op := testOperation(models.DataMap{"name": "Local"}, time.Now())

		result := resolver.Resolve(op, models.DataMap{"name": "Server"}, models.StrategyLastWriteWins)
		require.True(t, result.Resolved)
		assert.Equal(t, "Server", result.ResolvedData["name"])
	})
}

func TestConflictResolver_Merge(t *testing.T) {
	resolver := newTestResolver()

	op := testOperation(models.DataMap{"name": "Local", "progress": 2}, time.Now())
	serverData := models.DataMap{"name": "Server", "progress": 5}

	result := resolver.Resolve(op, serverData, models.StrategyMerge)
	require.True(t, result.Resolved)
	assert.Equal(t, models.StrategyMerge, result.StrategyUsed)
	assert.Equal(t, 5, result.ResolvedData["progress"])
}

func TestConflictResolver_MergeWithAncestor(t *testing.T) {
	resolver := newTestResolver()

	ancestor := models.DataMap{"name": "run", "progress": 1}
	op := testOperation(models.DataMap{"name": "morning run", "progress": 1}, time.Now())
	serverData := models.DataMap{"name": "run", "progress": 3}

	result := resolver.ResolveWithAncestor(op, serverData, ancestor, models.StrategyMerge)
	require.True(t, result.Resolved)
	// each side changed a different field; both edits survive
	assert.Equal(t, "morning run", result.ResolvedData["name"])
	assert.Equal(t, 3, result.ResolvedData["progress"])
}

func TestConflictResolver_Manual(t *testing.T) {
	resolver := newTestResolver()

	op := testOperation(models.DataMap{"name": "Local"}, time.Now())

	result := resolver.Resolve(op, models.DataMap{"name": "Server"}, models.StrategyManual)
	assert.False(t, result.Resolved)
	assert.Nil(t, result.ResolvedData)
	assert.Equal(t, "Manual resolution required", result.Error)
}

func TestConflictResolver_UnknownStrategy(t *testing.T) {
	resolver := newTestResolver()

	result := resolver.Resolve(testOperation(nil, time.Now()), nil, models.ResolutionStrategy("majority_vote"))
	assert.False(t, result.Resolved)
	assert.Contains(t, result.Error, "unknown resolution strategy")
}

// ── MergePreview + ApplyFieldResolutions ─────────────────────────────────────

func TestConflictResolver_CreateMergePreview(t *testing.T) {
	resolver := newTestResolver()

	local := models.DataMap{"name": "Local", "streakCount": 4, "reminder": "07:00"}
	server := models.DataMap{"name": "Server", "streakCount": 4, "color": "green"}

	preview := resolver.CreateMergePreview(local, server)

	require.True(t, preview.HasConflicts())
	assert.Equal(t, 1, preview.ConflictCount())
	assert.Equal(t, "name", preview.Conflicts[0].FieldName)

	// agreeing and one-sided fields are pre-merged
	assert.Equal(t, 4, preview.MergedData["streakCount"])
	assert.Equal(t, "07:00", preview.MergedData["reminder"])
	assert.Equal(t, "green", preview.MergedData["color"])
}

func TestConflictResolver_ApplyFieldResolutions(t *testing.T) {
	resolver := newTestResolver()

	local := models.DataMap{"name": "Local", "frequency": "weekly", "note": "mine"}
	server := models.DataMap{"name": "Server", "frequency": "daily", "note": "theirs"}
	preview := resolver.CreateMergePreview(local, server)
	require.Equal(t, 3, preview.ConflictCount())

	resolved := resolver.ApplyFieldResolutions(preview, map[string]models.FieldResolution{
		"name":      {UseLocal: true},
		"frequency": {Custom: "monthly"},
		// "note" left undecided
	})

	assert.Equal(t, "Local", resolved["name"])
	assert.Equal(t, "monthly", resolved["frequency"])
	assert.Equal(t, "theirs", resolved["note"], "undecided fields keep the server value")
}
