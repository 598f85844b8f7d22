package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client"
	"taskboard/internal/config"
)

// Run starts the interactive client against the configured task store.
func Run(cfg *config.Config) error {
	api := client.New(cfg.Client.APIURL, cfg.Client.RequestTimeout)
	model := NewModel(api, cfg.Client.PageSize)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
