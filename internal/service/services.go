// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-habit-sync/internal/adapter"
	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/store"
)

// Services bundles the sync core's service layer.
type Services struct {
	Detector     ConflictDetector
	Resolver     ConflictResolver
	Merger       ThreeWayMerger
	Orchestrator SyncOrchestrator
	Manager      SyncManager
}

// NewServices wires the service layer bottom-up: merger, resolver,
// detector, orchestrator, facade.
func NewServices(storages *store.Storages, transport adapter.SyncTransport, cfg config.ClientSync, log *logger.Logger) *Services {
	merger := NewThreeWayMerger()
	resolver := NewConflictResolver(merger)
	detector := NewConflictDetector()
	orchestrator := NewSyncOrchestrator(storages, transport, detector, resolver, cfg, log)

	return &Services{
		Detector:     detector,
		Resolver:     resolver,
		Merger:       merger,
		Orchestrator: orchestrator,
		Manager:      NewSyncManager(storages, orchestrator, log),
	}
}
