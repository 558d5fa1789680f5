package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation settings used by the terminal client.
type ClientApp struct {
	// StartPath is the route opened on startup.
	StartPath string
}

// ClientAdapter holds network settings used by the backend adapter.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains presentation settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
}

// WebServer holds listen settings of the web shell.
type WebServer struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// WebConfig is the web shell configuration assembled from
// [StructuredConfig].
type WebConfig struct {
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Server contains the listen settings.
	Server WebServer
}

// GetClientConfig builds and validates the terminal client config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetWebConfig builds and validates the web shell config view from the
// merged structured configuration.
func GetWebConfig() (*WebConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newWebConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			StartPath: cfg.App.StartPath,
		},
		Adapter: clientAdapter(cfg.Adapter),
	}

	return clientCfg, clientCfg.validate()
}

func newWebConfig(cfg *StructuredConfig) (*WebConfig, error) {
	webCfg := &WebConfig{
		Adapter: clientAdapter(cfg.Adapter),
		Server: WebServer{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
	}

	return webCfg, webCfg.validate()
}

func clientAdapter(a Adapter) ClientAdapter {
	return ClientAdapter{
		HTTPAddress:    a.HTTPAddress,
		RequestTimeout: a.RequestTimeout,
	}
}
