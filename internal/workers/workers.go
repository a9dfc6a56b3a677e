// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-habit-sync/internal/adapter"
	"github.com/MKhiriev/go-habit-sync/internal/config"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/service"
)

// Workers aggregates the background workers of the sync client: the
// periodic sync ticker and the connectivity watcher.
type Workers struct {
	workers []PeriodicWorker
}

// NewWorkers builds the standard worker set for a sync client.
func NewWorkers(manager service.SyncManager, notifier adapter.ConnectivityNotifier, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []PeriodicWorker{
			NewSyncWorker(manager, cfg.SyncInterval, log),
			NewConnectivityWorker(manager, notifier, log),
		},
	}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and blocks until all have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
