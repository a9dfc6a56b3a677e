// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for payload checksums, canonical JSON encoding,
// HTTP client initialization, UUID generation,
// and other common operations.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON encodes the given value as JSON with deterministic output.
//
// encoding/json serializes map keys in sorted order, so two payloads that
// are deeply equal produce identical bytes regardless of insertion order.
// This makes the output suitable both for checksums and for byte-level
// equality comparison of loosely typed payloads.
//
// Parameters:
//
//	v - any JSON-serializable value (map, slice, struct, nil, etc.)
//
// Returns:
//
//	[]byte - canonical JSON encoding of v
//	error  - non-nil if v cannot be serialized
func CanonicalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding value to canonical JSON: %w", err)
	}

	return data, nil
}

// Checksum computes a SHA-256 digest over the canonical JSON encoding of
// the given value and returns it as a hex-encoded string.
//
// Because the encoding is canonical, deeply equal payloads always hash to
// the same checksum. Used for cheap content equality checks before a deep
// field-by-field comparison.
//
// Parameters:
//
//	v - any JSON-serializable value to be hashed
//
// Returns:
//
//	string - hex-encoded SHA-256 digest
//	error  - non-nil if v cannot be serialized
//
// Example usage:
//
//	sum, err := utils.Checksum(map[string]any{"name": "morning run"})
func Checksum(v any) (string, error) {
	data, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
