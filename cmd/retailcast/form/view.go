package form

import (
	"fmt"
	"strings"

	"retailcast/cmd/retailcast/ui"

	"github.com/charmbracelet/lipgloss"
)

const (
	title   = "Retail Sales Prediction"
	tagline = "Forecast Tomorrow's Sales, Today."
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state.ModalVisible() {
		frame, _, _ := m.modalFrame()
		return frame
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(title))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Label.Render("Select Category:"),
		m.category.View(m.styles, m.focus == focusCategory),
	))
	sb.WriteString("\n")

	dateRow := []string{
		m.styles.Label.Render("Select Date:"),
		m.picker.Field(m.styles, m.focus == focusDate),
	}
	if m.state.HasDate() {
		dateRow = append(dateRow, m.styles.Muted.Render(" ✕ (x)"))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, dateRow...))
	sb.WriteString("\n")

	if m.focus == focusDate {
		cal := m.picker.Calendar(m.styles)
		sb.WriteString(lipgloss.NewStyle().MarginLeft(lipgloss.Width(m.styles.Label.Render(""))).Render(cal))
		sb.WriteString("\n")
	}

	button := m.styles.Button
	if m.focus == focusSubmit {
		button = m.styles.ButtonActive
	}
	sb.WriteString(button.Render("Predict"))
	sb.WriteString("\n")

	if m.state.ErrorVisible() {
		sb.WriteString(m.styles.Error.Render("⚠️ " + m.state.Err))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Tagline.Render(tagline))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.bindingsFor(m.focus, false))))

	return m.styles.Content.Render(sb.String())
}

const closeLabel = "Close"

// renderModal renders the result box and, separately, its close button.
func (m Model) renderModal() (box, closeButton string) {
	s := m.styles
	v := s.ModalValue
	t := s.ModalText

	lines := []string{
		v.Render(fmt.Sprintf("%.2f units", *m.state.Prediction)),
		t.Render("of"),
		v.Render(string(m.state.Category)),
		t.Render("will be sold"),
		t.Render("on"),
		v.Render(m.state.DisplayDate().String()),
		"",
	}
	closeButton = s.ButtonActive.Render(closeLabel)
	lines = append(lines, closeButton)

	footer := m.help.ShortHelpView(m.keys.bindingsFor(m.focus, true))
	if m.status != "" {
		footer = m.status
	}
	lines = append(lines, s.Muted.Render(footer))

	return s.Modal.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)), closeButton
}

// modalFrame centers the modal on the screen and returns the bounds of the
// box and of its close button.
func (m Model) modalFrame() (frame string, bounds, closeBounds ui.Rect) {
	box, button := m.renderModal()
	frame, bounds = ui.Overlay(m.width, m.height, box)
	if r, ok := ui.Locate(box, button, closeLabel); ok {
		closeBounds = r.Offset(bounds.X, bounds.Y)
	}
	return frame, bounds, closeBounds
}
