package ui

import (
	"fmt"
	"strings"
	"time"

	"retailcast/internal/forecast"
)

// DatePicker is a month calendar limited to [Min, Max]. It works purely on
// displayed dates; mapping to stored dates is the caller's business.
type DatePicker struct {
	Min forecast.Date
	Max forecast.Date

	Placeholder string

	cursor   forecast.Date
	selected forecast.Date // zero when nothing is picked
}

// NewDatePicker returns a picker for the whole of year.
func NewDatePicker(year int) DatePicker {
	first := forecast.Date{Year: year, Month: time.January, Day: 1}
	return DatePicker{
		Min:         first,
		Max:         forecast.Date{Year: year, Month: time.December, Day: 31},
		Placeholder: "Select a date",
		cursor:      first,
	}
}

// InRange reports whether d may be picked.
func (p DatePicker) InRange(d forecast.Date) bool {
	return !d.Before(p.Min) && !d.After(p.Max)
}

func (p DatePicker) clamp(d forecast.Date) forecast.Date {
	if d.Before(p.Min) {
		return p.Min
	}
	if d.After(p.Max) {
		return p.Max
	}
	return d
}

// MoveTo highlights d, clamped to the range. The selection is unchanged.
func (p *DatePicker) MoveTo(d forecast.Date) {
	if !d.IsZero() {
		p.cursor = p.clamp(d)
	}
}

// Cursor returns the highlighted day.
func (p DatePicker) Cursor() forecast.Date { return p.cursor }

// Selected returns the picked day, or the zero Date.
func (p DatePicker) Selected() forecast.Date { return p.selected }

// SetSelected marks d as picked and moves the cursor to it. The zero Date
// clears the selection and leaves the cursor where it is.
func (p *DatePicker) SetSelected(d forecast.Date) {
	p.selected = d
	if !d.IsZero() {
		p.cursor = p.clamp(d)
	}
}

// MoveDays moves the cursor by n days, stopping at the range bounds.
func (p *DatePicker) MoveDays(n int) {
	p.cursor = p.clamp(p.cursor.AddDays(n))
}

// MoveMonths moves the cursor by n months, stopping at the range bounds.
func (p *DatePicker) MoveMonths(n int) {
	p.cursor = p.clamp(p.cursor.AddMonths(n))
}

// MonthStart moves the cursor to the first pickable day of its month.
func (p *DatePicker) MonthStart() {
	p.cursor = p.clamp(forecast.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: 1})
}

// MonthEnd moves the cursor to the last pickable day of its month.
func (p *DatePicker) MonthEnd() {
	last := forecast.DaysIn(p.cursor.Year, p.cursor.Month)
	p.cursor = p.clamp(forecast.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: last})
}

// Field renders the one-line input showing the picked date.
func (p DatePicker) Field(st Styles, focused bool) string {
	text := st.Placeholder.Render(p.Placeholder)
	if !p.selected.IsZero() {
		text = p.selected.String()
	}
	if focused {
		return st.FieldFocused.Render(text)
	}
	return st.Field.Render(text)
}

// Calendar renders the month grid around the cursor.
func (p DatePicker) Calendar(st Styles) string {
	var sb strings.Builder

	title := fmt.Sprintf("%s %d", p.cursor.Month, p.cursor.Year)
	sb.WriteString(st.CalendarTitle.Render(fmt.Sprintf("%-20s", title)))
	sb.WriteString("\n")
	sb.WriteString(st.Weekday.Render("Su Mo Tu We Th Fr Sa"))
	sb.WriteString("\n")

	first := forecast.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: 1}
	offset := int(first.Weekday())
	sb.WriteString(strings.Repeat("   ", offset))

	days := forecast.DaysIn(p.cursor.Year, p.cursor.Month)
	for day := 1; day <= days; day++ {
		d := forecast.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: day}
		cell := fmt.Sprintf("%2d", day)
		switch {
		case d.SameDay(p.cursor):
			cell = st.DayCursor.Render(cell)
		case !p.InRange(d):
			cell = st.DayDisabled.Render(cell)
		case !p.selected.IsZero() && d.SameDay(p.selected):
			cell = st.DaySelected.Render(cell)
		default:
			cell = st.Day.Render(cell)
		}
		sb.WriteString(cell)

		col := (offset + day) % 7
		if col == 0 && day != days {
			sb.WriteString("\n")
		} else if col != 0 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
