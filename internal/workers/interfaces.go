// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the PeriodicWorker interface and a Workers aggregate that
// allows starting and stopping multiple workers in a unified way.
package workers

import "context"

// PeriodicWorker is the interface that must be implemented by any
// background worker. Start launches the worker's goroutine and returns
// immediately; Stop blocks until the goroutine has exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // wait for background processing to finish
//	}
type PeriodicWorker interface {
	Start(ctx context.Context)
	Stop()
}
