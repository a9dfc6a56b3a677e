// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-habit-sync/models"
)

// fieldClass drives the per-field heuristic applied when both sides
// changed a field to different values.
type fieldClass int

const (
	// classOther falls back to last-write-wins, defaulting to server.
	classOther fieldClass = iota

	// classFreeText prefers the local value so fresh typing on the
	// device is never discarded.
	classFreeText

	// classCounter prefers the numerically larger value; progress only
	// moves forward.
	classCounter
)

// freeTextMarkers and counterMarkers identify field classes by name
// fragment, lowercase.
var (
	freeTextMarkers = []string{"note", "description", "comment", "journal", "reflection", "summary"}
	counterMarkers  = []string{"progress", "count", "streak", "total", "completed", "score", "steps"}
)

type threeWayMerger struct{}

// NewThreeWayMerger returns a stateless field-level merger.
func NewThreeWayMerger() ThreeWayMerger {
	return &threeWayMerger{}
}

func (m *threeWayMerger) Merge(ancestor, local, server models.DataMap) models.DataMap {
	merged := models.DataMap{}
	localOnly := models.DataMap{}
	serverOnly := models.DataMap{}

	for name := range unionKeys(local, server) {
		localValue, inLocal := local[name]
		serverValue, inServer := server[name]
		ancestorValue, inAncestor := ancestor[name]

		switch {
		case inLocal && !inServer:
			// the server side dropped a field it previously agreed on;
			// an unchanged local copy does not resurrect it
			if inAncestor && models.ValuesEqual(ancestorValue, localValue) {
				continue
			}
			localOnly[name] = localValue

		case inServer && !inLocal:
			if inAncestor && models.ValuesEqual(ancestorValue, serverValue) {
				continue
			}
			serverOnly[name] = serverValue

		default:
			merged[name] = m.mergeField(name, ancestorValue, inAncestor, localValue, serverValue, local, server)
		}
	}

	// one-sided fields are carried through unconditionally
	_ = mergo.Merge(&merged, localOnly)
	_ = mergo.Merge(&merged, serverOnly)

	return merged
}

// mergeField settles a single field present on both sides.
func (m *threeWayMerger) mergeField(name string, ancestorValue any, inAncestor bool, localValue, serverValue any, local, server models.DataMap) any {
	if models.ValuesEqual(localValue, serverValue) {
		return localValue
	}

	localChanged := !inAncestor || !models.ValuesEqual(ancestorValue, localValue)
	serverChanged := !inAncestor || !models.ValuesEqual(ancestorValue, serverValue)

	// only actual changes can conflict
	if !localChanged {
		return serverValue
	}
	if !serverChanged {
		return localValue
	}

	switch classifyField(name) {
	case classFreeText:
		return localValue

	case classCounter:
		if lv, lok := asNumber(localValue); lok {
			if sv, sok := asNumber(serverValue); sok {
				if lv > sv {
					return localValue
				}
				return serverValue
			}
		}
		// non-numeric counter field falls through to last-write-wins
		return lastWriteWinsValue(local, server, localValue, serverValue)

	default:
		return lastWriteWinsValue(local, server, localValue, serverValue)
	}
}

// lastWriteWinsValue picks the value from whichever payload carries the
// strictly later embedded timestamp. Server wins ties and every case
// where no timestamps can be compared.
func lastWriteWinsValue(local, server models.DataMap, localValue, serverValue any) any {
	localTS, localOK := ExtractTimestamp(local)
	serverTS, serverOK := ExtractTimestamp(server)

	if localOK && serverOK && localTS.After(serverTS) {
		return localValue
	}
	if localOK && !serverOK {
		return localValue
	}
	return serverValue
}

func classifyField(name string) fieldClass {
	lowered := strings.ToLower(name)
	for _, marker := range freeTextMarkers {
		if strings.Contains(lowered, marker) {
			return classFreeText
		}
	}
	for _, marker := range counterMarkers {
		if strings.Contains(lowered, marker) {
			return classCounter
		}
	}
	return classOther
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// timestampKeys are the well-known payload keys checked when a strategy
// needs a server-side or embedded modification time.
var timestampKeys = []string{"updatedAt", "lastModified", "updated_at", "last_modified"}

// ExtractTimestamp pulls a modification time out of a loosely-typed
// payload. String values are parsed as RFC 3339; numeric values are
// interpreted as Unix milliseconds.
func ExtractTimestamp(data models.DataMap) (time.Time, bool) {
	for _, key := range timestampKeys {
		raw, ok := data[key]
		if !ok {
			continue
		}

		switch v := raw.(type) {
		case string:
			if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
				return ts, true
			}
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				return ts, true
			}
		case float64:
			return time.UnixMilli(int64(v)), true
		case int64:
			return time.UnixMilli(v), true
		case int:
			return time.UnixMilli(int64(v)), true
		}
	}

	return time.Time{}, false
}
