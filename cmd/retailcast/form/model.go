// Package form provides the interactive sales forecast form: a category
// select, a date picker, a Predict button, an error line and a result
// modal, driven by one forecast.State record.
package form

import (
	"context"

	"retailcast/cmd/retailcast/ui"
	"retailcast/internal/forecast"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model of the form.
type Model struct {
	state forecast.State
	focus focusField

	category ui.CategorySelect
	picker   ui.DatePicker

	predictor Predictor
	ctx       context.Context
	seq       int

	styles        ui.Styles
	keys          keyMap
	help          help.Model
	width, height int
	status        string
}

// New creates the form model.
func New(cfg Config) Model {
	styles := ui.DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	h := help.New()
	h.ShortSeparator = " · "

	return Model{
		category:  ui.NewCategorySelect(),
		picker:    ui.NewDatePicker(cfg.DisplayYear),
		predictor: cfg.Predictor,
		ctx:       ctx,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current form state.
func (m Model) State() forecast.State {
	return m.state
}
