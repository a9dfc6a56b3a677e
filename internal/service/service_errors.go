// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrConflictNotFound is returned by ResolveConflict when no pending
	// conflict matches the given entity.
	ErrConflictNotFound = errors.New("no pending conflict for entity")

	// ErrManualResolutionRequired is returned when the manual strategy is
	// applied: the conflict stays pending until a per-field decision is
	// made.
	ErrManualResolutionRequired = errors.New("manual resolution required")

	// ErrUnknownStrategy is returned when a resolution strategy outside
	// the five supported ones is requested.
	ErrUnknownStrategy = errors.New("unknown resolution strategy")

	// ErrOrchestratorDisposed is returned by calls made after Dispose.
	ErrOrchestratorDisposed = errors.New("sync orchestrator is disposed")
)
