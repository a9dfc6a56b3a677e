package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
)

type pollingConnectivityNotifier struct {
	transport SyncTransport
	interval  time.Duration
	logger    *logger.Logger

	online chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewPollingConnectivityNotifier creates a [ConnectivityNotifier] that
// probes the server's health endpoint on a fixed interval and emits a
// signal on each offline-to-online transition. If interval is zero or
// negative it defaults to 30 seconds. The notifier is idle until Start is
// called.
func NewPollingConnectivityNotifier(transport SyncTransport, interval time.Duration, log *logger.Logger) ConnectivityNotifier {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &pollingConnectivityNotifier{
		transport: transport,
		interval:  interval,
		logger:    log,
		online:    make(chan struct{}, 1),
	}
}

func (n *pollingConnectivityNotifier) Online() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.online
}

// Start launches the background probe loop. The first probe establishes
// the baseline state; a signal is emitted only when a failed probe is
// followed by a successful one. The goroutine exits when ctx is cancelled
// or Stop is called.
func (n *pollingConnectivityNotifier) Start(ctx context.Context) {
	n.mu.Lock()
	if n.cancel != nil {
		n.mu.Unlock()
		return
	}
	watchCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	if n.closed {
		// a previous Stop closed the signal channel, replace it
		n.online = make(chan struct{}, 1)
		n.closed = false
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()

		wasOnline := n.probe(watchCtx)
		t := time.NewTicker(n.interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				isOnline := n.probe(watchCtx)
				if isOnline && !wasOnline {
					n.logger.Info().Str("func", "pollingConnectivityNotifier.Start").Msg("connectivity restored")
					select {
					case n.online <- struct{}{}:
					default: // a pending signal is already waiting
					}
				}
				wasOnline = isOnline
			}
		}
	}()
}

// Stop cancels the probe loop, waits for it to exit, and closes the
// Online channel. Safe to call when the notifier is not running.
func (n *pollingConnectivityNotifier) Stop() {
	n.mu.Lock()
	cancel := n.cancel
	n.cancel = nil
	n.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	n.wg.Wait()

	n.mu.Lock()
	close(n.online)
	n.closed = true
	n.mu.Unlock()
}

func (n *pollingConnectivityNotifier) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()
	return n.transport.Ping(probeCtx) == nil
}
