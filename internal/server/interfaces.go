package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, a stop signal
	// arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
