package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cheddup/internal/logger"
)

var errNilUI = errors.New("ui is nil")

type App struct {
	ui UI

	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNilUI
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run drives the UI until the user quits or the process receives SIGTERM
// or SIGQUIT. Interrupts reach the UI as ctrl+c key presses.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
