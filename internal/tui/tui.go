// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client: an app shell with header,
// hero copy and footer around the upload and chat views.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/MKhiriev/cheddup/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilServices = errors.New("client services are nil")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	startPath string

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, startPath string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNilServices
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		startPath: startPath,
		logger:    logger,
	}, nil
}

// NewRootModel builds the shell with both views bound to ctx.
func (t *TUI) NewRootModel(ctx context.Context) RootModel {
	return NewRootModel(
		NewUploadModel(ctx, t.services.UploadService, ""),
		NewChatModel(ctx, t.services.ChatService),
		t.startPath,
		t.buildInfo,
	)
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is a
// normal exit.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("start_path", t.startPath).Msg("starting terminal client")

	finalModel, err := tea.NewProgram(t.NewRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal client: %w", err)
	}

	if root, ok := finalModel.(RootModel); ok {
		t.logger.Info().
			Str("path", root.Path()).
			Bool("quit_by_user", root.quitByUser).
			Msg("terminal client stopped")
	}

	return nil
}
