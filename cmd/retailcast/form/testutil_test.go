package form

import (
	"context"
	"sync"
	"testing"

	"retailcast/cmd/retailcast/ui"
	"retailcast/internal/forecast"

	tea "github.com/charmbracelet/bubbletea"
)

// fakePredictor records requests and answers with a fixed result.
type fakePredictor struct {
	mu    sync.Mutex
	calls []forecast.Request
	value float64
	err   error
}

func (f *fakePredictor) Predict(_ context.Context, req forecast.Request) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.value, f.err
}

func (f *fakePredictor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestModel(t *testing.T, p Predictor, displayYear int) Model {
	t.Helper()
	styles := ui.NewStyles(ui.LightTheme())
	m := New(Config{Predictor: p, DisplayYear: displayYear, Styles: &styles})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// update feeds msg and returns the resulting Model, dropping the command.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeMsg(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// chooseCategory cycles the select until c is shown.
func chooseCategory(t *testing.T, m Model, c forecast.Category) Model {
	t.Helper()
	m.focus = focusCategory
	for i := 0; i <= len(forecast.Categories) && m.state.Category != c; i++ {
		m = update(t, m, keyMsg(tea.KeyRight))
	}
	if m.state.Category != c {
		t.Fatalf("could not select %s", c)
	}
	return m
}

// pickDisplayed moves the calendar cursor to displayed and presses enter.
func pickDisplayed(t *testing.T, m Model, displayed forecast.Date) Model {
	t.Helper()
	m.focus = focusDate
	m.picker.MoveTo(displayed)
	if m.picker.Cursor() != displayed {
		t.Fatalf("%s is outside the picker range", displayed)
	}
	return update(t, m, keyMsg(tea.KeyEnter))
}

// submit presses ctrl+s and runs the returned command, if any.
func submit(t *testing.T, m Model) (Model, tea.Msg) {
	t.Helper()
	m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}
