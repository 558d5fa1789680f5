// Package server runs the web shell's HTTP server: startup, signal handling
// and graceful shutdown bounded by the configured timeout.
package server
