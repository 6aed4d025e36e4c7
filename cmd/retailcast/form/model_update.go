package form

import (
	"retailcast/internal/forecast"
	"retailcast/internal/logging"
	"retailcast/internal/predictor"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. All state changes happen here, on the
// program's event loop; requests run in commands and report back as
// messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.state.ModalVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleFormKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case predictionMsg:
		logging.UI("submission #%d: %s on %s -> %.2f", msg.seq, msg.req.Category, msg.req.Date, msg.value)
		m.state.Succeed(msg.value)
		m.status = ""
		return m, nil

	case predictionErrMsg:
		logging.Get(logging.CategoryUI).Warn("submission #%d failed: %v", msg.seq, msg.err)
		m.state.Fail(predictor.UserMessage(msg.err))
		return m, nil
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	switch m.focus {
	case focusCategory:
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
			m.category.Prev()
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
			m.category.Next()
		default:
			return m, nil
		}
		m.state.SetCategory(m.category.Value())
		logging.UIDebug("category -> %q", m.state.Category)

	case focusDate:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.picker.MoveDays(-1)
		case key.Matches(msg, m.keys.Right):
			m.picker.MoveDays(1)
		case key.Matches(msg, m.keys.Up):
			m.picker.MoveDays(-7)
		case key.Matches(msg, m.keys.Down):
			m.picker.MoveDays(7)
		case key.Matches(msg, m.keys.PrevMonth):
			m.picker.MoveMonths(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.picker.MoveMonths(1)
		case key.Matches(msg, m.keys.MonthHome):
			m.picker.MonthStart()
		case key.Matches(msg, m.keys.MonthEnd):
			m.picker.MonthEnd()
		case key.Matches(msg, m.keys.Today):
			m.picker.MoveTo(sameDayIn(today(), m.picker.Min.Year))
		case key.Matches(msg, m.keys.Pick):
			m.pickDate(m.picker.Cursor())
			m.focus = focusSubmit
		case key.Matches(msg, m.keys.Clear):
			m.clearDate()
		}

	case focusSubmit:
		if key.Matches(msg, m.keys.Pick) {
			return m.submit()
		}
	}

	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.dismiss("close")
	case key.Matches(msg, m.keys.Copy):
		if err := clipboardWriteAll(m.state.Result()); err != nil {
			m.status = "Failed to copy result"
		} else {
			m.status = "Copied to clipboard"
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.state.ModalVisible() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	_, bounds, closeBounds := m.modalFrame()
	switch {
	case closeBounds.Contains(msg.X, msg.Y):
		m.dismiss("close click")
	case !bounds.Contains(msg.X, msg.Y):
		m.dismiss("overlay click")
	}
	return m, nil
}

// pickDate stores the day picked in the calendar, one year earlier than
// shown.
func (m *Model) pickDate(displayed forecast.Date) {
	stored := forecast.ToStoredDate(displayed)
	m.state.SetDate(stored)
	m.picker.SetSelected(forecast.ToDisplayDate(stored))
	logging.UIDebug("date picked %s (stored %s)", displayed, stored)
}

// sameDayIn returns d's month and day in year; Feb 29 becomes Feb 28 when
// year has none.
func sameDayIn(d forecast.Date, year int) forecast.Date {
	return forecast.NewDate(year, d.Month, min(d.Day, forecast.DaysIn(year, d.Month)))
}

func (m *Model) clearDate() {
	m.state.ClearDate()
	m.picker.SetSelected(forecast.Date{})
	logging.UIDebug("date cleared")
}

func (m *Model) dismiss(how string) {
	m.state.Dismiss()
	m.status = ""
	logging.UIDebug("modal dismissed (%s)", how)
}

// submit validates the form and, when complete, starts one request.
func (m Model) submit() (Model, tea.Cmd) {
	m.status = ""
	req, ok := m.state.BeginSubmit()
	if !ok {
		logging.UI("submission rejected: %s", m.state.Err)
		return m, nil
	}
	m.seq++
	logging.UI("submission #%d: %s on %s", m.seq, req.Category, req.Date)
	return m, predictCmd(m.ctx, m.predictor, m.seq, req)
}
