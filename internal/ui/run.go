package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/DaanHessen/lifesim-tui/internal/game"
	"github.com/DaanHessen/lifesim-tui/internal/store"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits. repo may be nil.
func Run(ctx context.Context, session *game.Session, repo store.Repository, cfg util.Config, version string, logger *log.Logger) error {
	m := newModel(ctx, session, repo, cfg.Theme, version, logger)
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80)); err == nil {
		m.renderer = r
	}
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
