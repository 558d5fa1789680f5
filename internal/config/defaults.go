package config

import (
	"time"

	"github.com/MKhiriev/cheddup/internal/app"
)

// Built-in defaults, matching the backend's local development setup.
const (
	DefaultBackendAddress  = "127.0.0.1:8000"
	DefaultRequestTimeout  = 2 * time.Minute
	DefaultServerAddress   = "localhost:3000"
	DefaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			StartPath: app.PathUpload,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultBackendAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
