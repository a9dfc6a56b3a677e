package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DataMap is the loosely-typed payload of a synchronized entity.
// Entity shapes vary by feature (habits, goals, sessions), so the sync
// core treats the payload as an opaque string-keyed mapping of JSON
// values (string, number, bool, null, nested mapping) and never
// interprets individual fields except where a merge heuristic requires it.
type DataMap map[string]any

// Value implements driver.Valuer so a DataMap can be stored in a TEXT
// column as canonical JSON. A nil map is stored as SQL NULL.
func (d DataMap) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal data map: %w", err)
	}
	return string(payload), nil
}

// Scan implements sql.Scanner for reading a DataMap back from a TEXT
// column. NULL scans to a nil map.
func (d *DataMap) Scan(src any) error {
	if src == nil {
		*d = nil
		return nil
	}

	var payload []byte
	switch v := src.(type) {
	case []byte:
		payload = v
	case string:
		payload = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DataMap", src)
	}

	if len(payload) == 0 {
		*d = nil
		return nil
	}
	if err := json.Unmarshal(payload, d); err != nil {
		return fmt.Errorf("unmarshal data map: %w", err)
	}
	return nil
}

// Equal reports whether two payloads are structurally identical.
// Comparison goes through canonical JSON so that values produced by
// application code (int) and values read back from storage or the wire
// (float64) compare equal when they encode identically.
func (d DataMap) Equal(other DataMap) bool {
	return ValuesEqual(map[string]any(d), map[string]any(other))
}

// Clone returns a deep copy of the payload obtained via a JSON
// round-trip. Returns nil for a nil map.
func (d DataMap) Clone() DataMap {
	if d == nil {
		return nil
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	out := make(DataMap, len(d))
	if err = json.Unmarshal(payload, &out); err != nil {
		return nil
	}
	return out
}

// ValuesEqual reports structural equality of two arbitrary JSON-like
// values using their canonical JSON encoding.
func ValuesEqual(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
