// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/go-habit-sync/models"
)

type conflictDetector struct{}

// NewConflictDetector returns a stateless, pure conflict detector.
func NewConflictDetector() ConflictDetector {
	return &conflictDetector{}
}

func (d *conflictDetector) HasConflict(local, server models.DataMap, localVersion, serverVersion int64) bool {
	// the server holds writes the client has never seen
	if serverVersion > localVersion {
		return true
	}

	// the client is ahead; the server lags and catches up next cycle
	if localVersion > serverVersion {
		return false
	}

	// same version: disagreement exists iff the content diverged
	return !local.Equal(server)
}

func (d *conflictDetector) ConflictingFields(local, server models.DataMap) []models.ConflictingField {
	fields := make([]models.ConflictingField, 0)

	for name := range unionKeys(local, server) {
		localValue, inLocal := local[name]
		serverValue, inServer := server[name]

		if inLocal && inServer && models.ValuesEqual(localValue, serverValue) {
			continue
		}

		fields = append(fields, models.ConflictingField{
			FieldName:   name,
			LocalValue:  localValue,
			ServerValue: serverValue,
		})
	}

	// deterministic order for callers rendering diffs
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].FieldName < fields[j].FieldName
	})

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func unionKeys(maps ...models.DataMap) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, m := range maps {
		for k := range m {
			keys[k] = struct{}{}
		}
	}
	return keys
}
