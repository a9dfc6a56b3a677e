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

// ── Merge: three-way rules ───────────────────────────────────────────────────

func TestThreeWayMerger_UnchangedOnOneSide(t *testing.T) {
	merger := NewThreeWayMerger()
	ancestor := models.DataMap{"name": "run", "frequency": "daily"}

	t.Run("only local diverges, local wins", func(t *testing.T) {
		local := models.DataMap{"name": "morning run", "frequency": "daily"}
		server := models.DataMap{"name": "run", "frequency": "daily"}

		merged := merger.Merge(ancestor, local, server)
		assert.Equal(t, "morning run", merged["name"])
		assert.Equal(t, "daily", merged["frequency"])
	})

	t.Run("only server diverges, server wins", func(t *testing.T) {
		local := models.DataMap{"name": "run", "frequency": "daily"}
		server := models.DataMap{"name": "evening run", "frequency": "daily"}

		merged := merger.Merge(ancestor, local, server)
		assert.Equal(t, "evening run", merged["name"])
	})
}

func TestThreeWayMerger_IdenticalChange(t *testing.T) {
	merger := NewThreeWayMerger()

	ancestor := models.DataMap{"frequency": "daily"}
	local := models.DataMap{"frequency": "weekly"}
	server := models.DataMap{"frequency": "weekly"}

	merged := merger.Merge(ancestor, local, server)
	assert.Equal(t, "weekly", merged["frequency"])
}

func TestThreeWayMerger_FieldClassHeuristics(t *testing.T) {
	merger := NewThreeWayMerger()

	t.Run("free-text fields prefer the local value", func(t *testing.T) {
		local := models.DataMap{"notes": "typed on my phone"}
		server := models.DataMap{"notes": "older draft"}

		merged := merger.Merge(nil, local, server)
		assert.Equal(t, "typed on my phone", merged["notes"])
	})

	t.Run("counter fields take the numeric maximum", func(t *testing.T) {
		local := models.DataMap{"progress": 2}
		server := models.DataMap{"progress": 5}

		merged := merger.Merge(nil, local, server)
		assert.Equal(t, 5, merged["progress"])

		local = models.DataMap{"streak": 9}
		server = models.DataMap{"streak": 4}

		merged = merger.Merge(nil, local, server)
		assert.Equal(t, 9, merged["streak"])
	})

	t.Run("other fields fall back to last-write-wins", func(t *testing.T) {
		local := models.DataMap{
			"frequency": "weekly",
			"updatedAt": "2026-08-30T12:00:00Z",
		}
		server := models.DataMap{
			"frequency": "daily",
			"updatedAt": "2026-08-30T10:00:00Z",
		}

		merged := merger.Merge(nil, local, server)
		assert.Equal(t, "weekly", merged["frequency"])
	})

	t.Run("no comparable timestamps default to server", func(t *testing.T) {
		local := models.DataMap{"frequency": "weekly"}
		server := models.DataMap{"frequency": "daily"}

		merged := merger.Merge(nil, local, server)
		assert.Equal(t, "daily", merged["frequency"])
	})
}

func TestThreeWayMerger_OneSidedFields(t *testing.T) {
	merger := NewThreeWayMerger()

	t.Run("new fields are carried through from either side", func(t *testing.T) {
		local := models.DataMap{"name": "run", "reminder": "07:00"}
		server := models.DataMap{"name": "run", "color": "green"}

		merged := merger.Merge(nil, local, server)
		assert.Equal(t, "07:00", merged["reminder"])
		assert.Equal(t, "green", merged["color"])
	})

	t.Run("a field deleted on one side stays deleted", func(t *testing.T) {
		ancestor := models.DataMap{"name": "run", "reminder": "07:00"}
		local := models.DataMap{"name": "run", "reminder": "07:00"}
		server := models.DataMap{"name": "run"}

		merged := merger.Merge(ancestor, local, server)
		_, present := merged["reminder"]
		assert.False(t, present)
	})
}

func TestThreeWayMerger_EmptyAncestorDegradation(t *testing.T) {
	merger := NewThreeWayMerger()

	// the conflict scenario from the habit domain: both sides edited, no
	// ancestor retained
	local := models.DataMap{"name": "Local", "progress": 2}
	server := models.DataMap{"name": "Server", "progress": 5}

	merged := merger.Merge(nil, local, server)
	require.NotNil(t, merged)
	assert.Equal(t, 5, merged["progress"])
	assert.Contains(t, []any{"Local", "Server"}, merged["name"])
}

// ── ExtractTimestamp ─────────────────────────────────────────────────────────

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		data   models.DataMap
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339 string under updatedAt",
			data:   models.DataMap{"updatedAt": "2026-08-30T12:30:00Z"},
			want:   time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "snake_case key",
			data:   models.DataMap{"updated_at": "2026-08-30T12:30:00Z"},
			want:   time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "unix milliseconds as json number",
			data:   models.DataMap{"lastModified": float64(1700000000000)},
			want:   time.UnixMilli(1700000000000),
			wantOK: true,
		},
		{
			name:   "no well-known key",
			data:   models.DataMap{"name": "run"},
			wantOK: false,
		},
		{
			name:   "unparseable string",
			data:   models.DataMap{"updatedAt": "yesterday"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTimestamp(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}
