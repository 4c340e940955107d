// Package workers provides abstractions for managing and running
// background workers of the consoles.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work continues in a
// goroutine until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
