package lampboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/varalys/maschine/internal/settings"
)

// Run starts the interactive lampboard for s and blocks until the user quits.
func Run(s settings.Settings) error {
	m, err := NewModel(s)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running lampboard: %w", err)
	}
	return nil
}
