package server

import "context"

// Server defines the lifecycle contract of the backend.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
