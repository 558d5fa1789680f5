package server

import "context"

// Server defines the lifecycle contract of the web shell server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the process gets
	// SIGINT, SIGTERM or SIGQUIT, then shuts down gracefully. It returns
	// the listen error if the server could not start.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, falling back to closing all
	// connections when ctx expires first.
	Shutdown(ctx context.Context) error
}
