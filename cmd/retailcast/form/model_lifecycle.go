package form

import (
	"fmt"

	"retailcast/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive form and blocks until the user quits.
// With mouse enabled, clicks outside the result modal dismiss it.
func Run(cfg Config, mouse bool) error {
	if cfg.Predictor == nil {
		return fmt.Errorf("form: predictor is required")
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if cfg.Context != nil {
		opts = append(opts, tea.WithContext(cfg.Context))
	}

	logging.UI("form started (display year %d, mouse %v)", cfg.DisplayYear, mouse)
	p := tea.NewProgram(New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form: %w", err)
	}
	logging.UI("form closed")
	return nil
}
