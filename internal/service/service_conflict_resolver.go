// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-habit-sync/models"
)

type conflictResolver struct {
	merger ThreeWayMerger
}

// NewConflictResolver returns a resolver that delegates the merge
// strategy to the given three-way merger.
func NewConflictResolver(merger ThreeWayMerger) ConflictResolver {
	return &conflictResolver{merger: merger}
}

func (r *conflictResolver) Resolve(op models.SyncOperation, serverData models.DataMap, strategy models.ResolutionStrategy) models.ConflictResolutionResult {
	return r.ResolveWithAncestor(op, serverData, nil, strategy)
}

func (r *conflictResolver) ResolveWithAncestor(op models.SyncOperation, serverData, ancestor models.DataMap, strategy models.ResolutionStrategy) models.ConflictResolutionResult {
	switch strategy {
	case models.StrategyServerWins:
		return resolved(serverData.Clone(), strategy)

	case models.StrategyClientWins:
		return resolved(op.Data.Clone(), strategy)

	case models.StrategyLastWriteWins:
		serverTS, ok := ExtractTimestamp(serverData)
		// the strictly later full payload wins; the server is the
		// durable record, so it keeps ties and unparseable timestamps
		if ok && op.Timestamp.After(serverTS) {
			return resolved(op.Data.Clone(), strategy)
		}
		return resolved(serverData.Clone(), strategy)

	case models.StrategyMerge:
		return resolved(r.merger.Merge(ancestor, op.Data, serverData), strategy)

	case models.StrategyManual:
		return models.ConflictResolutionResult{
			Resolved:     false,
			StrategyUsed: strategy,
			Error:        "Manual resolution required",
		}

	default:
		return models.ConflictResolutionResult{
			Resolved:     false,
			StrategyUsed: strategy,
			Error:        fmt.Sprintf("unknown resolution strategy: %s", strategy),
		}
	}
}

func (r *conflictResolver) CreateMergePreview(local, server models.DataMap) models.MergePreview {
	merged := models.DataMap{}
	var conflicts []models.ConflictingField

	for name := range unionKeys(local, server) {
		localValue, inLocal := local[name]
		serverValue, inServer := server[name]

		switch {
		case inLocal && !inServer:
			merged[name] = localValue

		case inServer && !inLocal:
			merged[name] = serverValue

		case models.ValuesEqual(localValue, serverValue):
			merged[name] = localValue

		default:
			conflicts = append(conflicts, models.ConflictingField{
				FieldName:   name,
				LocalValue:  localValue,
				ServerValue: serverValue,
			})
		}
	}

	return models.MergePreview{MergedData: merged, Conflicts: conflicts}
}

func (r *conflictResolver) ApplyFieldResolutions(preview models.MergePreview, resolutions map[string]models.FieldResolution) models.DataMap {
	result := preview.MergedData.Clone()
	if result == nil {
		result = models.DataMap{}
	}

	for _, field := range preview.Conflicts {
		decision, decided := resolutions[field.FieldName]

		switch {
		case decided && decision.Custom != nil:
			result[field.FieldName] = decision.Custom
		case decided && decision.UseLocal:
			result[field.FieldName] = field.LocalValue
		default:
			// undecided fields and explicit UseServer both keep the
			// durable record's value
			result[field.FieldName] = field.ServerValue
		}
	}

	return result
}

func resolved(data models.DataMap, strategy models.ResolutionStrategy) models.ConflictResolutionResult {
	return models.ConflictResolutionResult{
		Resolved:     true,
		ResolvedData: data,
		StrategyUsed: strategy,
	}
}
