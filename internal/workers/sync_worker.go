// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/service"
)

type syncWorker struct {
	manager  service.SyncManager
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that triggers a sync cycle on a ticker.
// The worker is idle until Start is called.
func NewSyncWorker(manager service.SyncManager, interval time.Duration, log *logger.Logger) PeriodicWorker {
	return &syncWorker{
		manager:  manager,
		interval: interval,
		logger:   log,
	}
}

// Start stops any previously running instance, then launches a background
// goroutine that calls ForceSync every interval. If the interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *syncWorker) Start(ctx context.Context) {
	interval := w.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.manager.ForceSync(jobCtx); err != nil {
					w.logger.Err(err).
						Str("func", "syncWorker.Start").
						Msg("periodic sync cycle failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running
// (no-op in that case).
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
