// Package tui implements the terminal dashboard of the storefront client.
//
// The dashboard renders the signed-in identity and every collection with its
// loading and error status, re-rendering whenever a store notifies a change.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	registry *store.Registry
	logger   *logger.Logger

	// options are appended to the program options; tests use them to run
	// without a terminal.
	options []tea.ProgramOption
}

func New(registry *store.Registry, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{registry: registry, logger: logger, options: opts}
}

// Run shows the dashboard until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	p := tea.NewProgram(newDashboardModel(ctx, t.registry), opts...)

	cancel := t.registry.Subscribe(func(e store.Event) {
		p.Send(storeChangedMsg{event: e})
	})
	defer cancel()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
