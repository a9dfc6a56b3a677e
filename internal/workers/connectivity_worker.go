// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-habit-sync/internal/adapter"
	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/service"
)

type connectivityWorker struct {
	manager  service.SyncManager
	notifier adapter.ConnectivityNotifier
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityWorker creates a worker that triggers a sync cycle each
// time the connectivity notifier reports an offline-to-online transition.
func NewConnectivityWorker(manager service.SyncManager, notifier adapter.ConnectivityNotifier, log *logger.Logger) PeriodicWorker {
	return &connectivityWorker{
		manager:  manager,
		notifier: notifier,
		logger:   log,
	}
}

// Start launches the notifier and a goroutine that syncs on every online
// signal. The goroutine exits when ctx is cancelled, Stop is called, or
// the notifier closes its channel.
func (w *connectivityWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.notifier.Start(jobCtx)

	go func() {
		defer w.wg.Done()

		for {
			select {
			case <-jobCtx.Done():
				return
			case _, open := <-w.notifier.Online():
				if !open {
					return
				}
				w.logger.Debug().
					Str("func", "connectivityWorker.Start").
					Msg("connectivity restored, starting sync cycle")
				if err := w.manager.ForceSync(jobCtx); err != nil {
					w.logger.Err(err).
						Str("func", "connectivityWorker.Start").
						Msg("connectivity-triggered sync cycle failed")
				}
			}
		}
	}()
}

// Stop cancels the watching goroutine, stops the notifier, and blocks
// until the goroutine has exited.
func (w *connectivityWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		w.notifier.Stop()
	}
	w.wg.Wait()
}
