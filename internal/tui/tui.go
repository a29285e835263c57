// Package tui is the terminal dashboard of the analytics service: sign in,
// browse sites, view a site's stats for a period and copy its tracking
// snippet. It talks to the server only through [adapter.DashboardClient].
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type TUI struct {
	client    adapter.DashboardClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client adapter.DashboardClient, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. It returns [ErrUserQuit] on a regular
// exit so callers can tell it apart from a terminal failure.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.client, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("dashboard stopped")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
