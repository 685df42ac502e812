// Package tui is the terminal client: a bubbletea application over the
// server's JSON API with screens for generation, history, bookmarks, usage
// statistics and account management.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yjkwon-dev/pinggye/internal/adapter"
	"github.com/yjkwon-dev/pinggye/internal/logger"
)

// Run starts the terminal application and blocks until the user quits.
func Run(api adapter.API, version string, log *logger.Logger) error {
	program := tea.NewProgram(NewAppModel(api, version, log), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running terminal application: %w", err)
	}
	return nil
}
