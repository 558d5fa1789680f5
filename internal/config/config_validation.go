// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants that hold for every binary: no configured
// duration may be negative.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if !strings.HasPrefix(cfg.App.StartPath, "/") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *WebConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.ShutdownTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (a ClientAdapter) validate() error {
	if strings.TrimSpace(a.HTTPAddress) == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
