package ui

import (
	"retailcast/internal/forecast"
)

// CategorySelect is a one-line picker over forecast.Categories with a
// leading "nothing selected" entry.
type CategorySelect struct {
	Placeholder string

	options []forecast.Category
	index   int // -1 is the placeholder
}

// NewCategorySelect returns a select showing the placeholder.
func NewCategorySelect() CategorySelect {
	return CategorySelect{
		Placeholder: "-- Select Category --",
		options:     forecast.Categories,
		index:       -1,
	}
}

// Next moves to the following entry, wrapping through the placeholder.
func (s *CategorySelect) Next() {
	s.index++
	if s.index >= len(s.options) {
		s.index = -1
	}
}

// Prev moves to the previous entry, wrapping through the placeholder.
func (s *CategorySelect) Prev() {
	s.index--
	if s.index < -1 {
		s.index = len(s.options) - 1
	}
}

// Value returns the selected category, or "" for the placeholder.
func (s CategorySelect) Value() forecast.Category {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return s.options[s.index]
}

// SetValue selects c; unknown values select the placeholder.
func (s *CategorySelect) SetValue(c forecast.Category) {
	s.index = -1
	for i, o := range s.options {
		if o == c {
			s.index = i
			return
		}
	}
}

// View renders the select.
func (s CategorySelect) View(st Styles, focused bool) string {
	text := st.Placeholder.Render(s.Placeholder)
	if v := s.Value(); v != "" {
		text = string(v)
	}
	if focused {
		return st.FieldFocused.Render("‹ " + text + " ›")
	}
	return st.Field.Render("  " + text + "  ")
}
