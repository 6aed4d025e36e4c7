package form

import (
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"retailcast/internal/forecast"
	"retailcast/internal/predictor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) forecast.Date {
	return forecast.Date{Year: y, Month: m, Day: d}
}

func TestSubmit_ValidationNeverCallsEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m Model) Model
	}{
		{"nothing selected", func(t *testing.T, m Model) Model { return m }},
		{"category only", func(t *testing.T, m Model) Model {
			return chooseCategory(t, m, forecast.Clothing)
		}},
		{"date only", func(t *testing.T, m Model) Model {
			return pickDisplayed(t, m, date(2024, time.March, 3))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePredictor{value: 1}
			m := tt.setup(t, newTestModel(t, fake, 2024))

			m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
			assert.Nil(t, cmd)
			assert.Equal(t, forecast.ValidationMessage, m.State().Err)
			assert.Nil(t, m.State().Prediction)
			assert.Zero(t, fake.callCount())
			assert.Contains(t, m.View(), forecast.ValidationMessage)
		})
	}
}

func TestSubmit_ExampleRoundTrip(t *testing.T) {
	fake := &fakePredictor{value: 42.5}
	m := newTestModel(t, fake, 2025)
	m = chooseCategory(t, m, forecast.Beauty)
	m = pickDisplayed(t, m, date(2025, time.June, 15))

	require.Equal(t, date(2024, time.June, 15), m.State().Date)
	assert.Equal(t, focusSubmit, m.focus, "picking a date moves focus to Predict")

	m, cmd := updateCmd(t, m, keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Len(t, fake.calls, 1)
	assert.Equal(t, forecast.Request{Category: "Beauty", Date: "2024-06-15"}, fake.calls[0])

	m = update(t, m, msg)
	st := m.State()
	require.NotNil(t, st.Prediction)
	assert.Equal(t, 42.5, *st.Prediction)
	assert.Empty(t, st.Err)
	assert.Equal(t, "42.50 units of Beauty will be sold on 2025-06-15", st.Result())

	view := m.View()
	assert.Contains(t, view, "42.50 units")
	assert.Contains(t, view, "Beauty")
	assert.Contains(t, view, "2025-06-15")
	assert.Contains(t, view, "Close")
}

func TestSubmit_SuccessClearsPriorError(t *testing.T) {
	fake := &fakePredictor{err: &predictor.DetailError{StatusCode: 400, Detail: "no history"}}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Electronics)
	m = pickDisplayed(t, m, date(2024, time.August, 1))

	m, msg := submit(t, m)
	m = update(t, m, msg)
	require.Equal(t, "no history", m.State().Err)

	fake.err = nil
	fake.value = 17
	m, msg = submit(t, m)
	m = update(t, m, msg)
	assert.Empty(t, m.State().Err)
	require.NotNil(t, m.State().Prediction)
	assert.Equal(t, 17.0, *m.State().Prediction)
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server detail", &predictor.DetailError{StatusCode: 400, Detail: "Selected date is not available in the dataset or lacks enough history."},
			"Selected date is not available in the dataset or lacks enough history."},
		{"no response", &predictor.TransportError{Err: syscall.ECONNREFUSED}, predictor.GenericMessage},
		{"unusable body", predictor.ErrMalformed, predictor.GenericMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePredictor{value: 5}
			m := newTestModel(t, fake, 2024)
			m = chooseCategory(t, m, forecast.Beauty)
			m = pickDisplayed(t, m, date(2024, time.May, 20))

			// A previous success must not survive the failure.
			m, msg := submit(t, m)
			m = update(t, m, msg)
			require.True(t, m.State().ModalVisible())
			m = update(t, m, keyMsg(tea.KeyEsc))

			fake.err = tt.err
			m, msg = submit(t, m)
			m = update(t, m, msg)

			assert.Equal(t, tt.want, m.State().Err)
			assert.Nil(t, m.State().Prediction)
			assert.False(t, m.State().ModalVisible())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestModal_Dismissal(t *testing.T) {
	open := func(t *testing.T) (Model, *fakePredictor) {
		fake := &fakePredictor{value: 3.14159}
		m := newTestModel(t, fake, 2024)
		m = chooseCategory(t, m, forecast.Clothing)
		m = pickDisplayed(t, m, date(2024, time.October, 9))
		m, msg := submit(t, m)
		m = update(t, m, msg)
		require.True(t, m.State().ModalVisible())
		return m, fake
	}

	for _, k := range []tea.KeyType{tea.KeyEnter, tea.KeyEsc} {
		t.Run("key "+k.String(), func(t *testing.T) {
			m, fake := open(t)
			m, cmd := updateCmd(t, m, keyMsg(k))
			assert.Nil(t, cmd)
			assert.Nil(t, m.State().Prediction)
			assert.Equal(t, 1, fake.callCount())
			assert.Contains(t, m.View(), "Predict")
		})
	}

	t.Run("click outside", func(t *testing.T) {
		m, fake := open(t)
		m, cmd := updateCmd(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)
		assert.Nil(t, m.State().Prediction)
		assert.Equal(t, 1, fake.callCount())
	})

	t.Run("click inside keeps modal", func(t *testing.T) {
		m, _ := open(t)
		_, bounds, closeBounds := m.modalFrame()
		require.False(t, closeBounds.Contains(bounds.X+1, bounds.Y+1))
		m = update(t, m, tea.MouseMsg{X: bounds.X + 1, Y: bounds.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.True(t, m.State().ModalVisible())
	})

	t.Run("click on Close", func(t *testing.T) {
		m, fake := open(t)
		frame, bounds, closeBounds := m.modalFrame()
		require.NotZero(t, closeBounds.W)
		require.True(t, bounds.Contains(closeBounds.X, closeBounds.Y), "close button sits inside the modal")

		// The label is drawn on the button's middle row.
		lines := strings.Split(ansi.Strip(frame), "\n")
		row := closeBounds.Y + closeBounds.H/2
		require.Less(t, row, len(lines))
		col := strings.Index(lines[row], "Close")
		require.GreaterOrEqual(t, col, 0)
		x := ansi.StringWidth(lines[row][:col])
		require.True(t, closeBounds.Contains(x, row))

		m, cmd := updateCmd(t, m, tea.MouseMsg{X: x, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)
		assert.Nil(t, m.State().Prediction)
		assert.Equal(t, 1, fake.callCount())
	})

	t.Run("release and motion are ignored", func(t *testing.T) {
		m, _ := open(t)
		m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
		assert.True(t, m.State().ModalVisible())
	})

	t.Run("form keys are inert while open", func(t *testing.T) {
		m, fake := open(t)
		m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
		assert.Nil(t, cmd)
		assert.True(t, m.State().ModalVisible())
		assert.Equal(t, 1, fake.callCount())
	})
}

func TestModal_CopyResult(t *testing.T) {
	var copied string
	old := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = old }()

	fake := &fakePredictor{value: 8}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Electronics)
	m = pickDisplayed(t, m, date(2024, time.January, 2))
	m, msg := submit(t, m)
	m = update(t, m, msg)

	m = update(t, m, runeMsg("c"))
	assert.Equal(t, "8.00 units of Electronics will be sold on 2024-01-02", copied)
	assert.Contains(t, m.View(), "Copied to clipboard")

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, runeMsg("c"))
	assert.Contains(t, m.View(), "Failed to copy result")
}

func TestDate_ClearAndLeapDay(t *testing.T) {
	fake := &fakePredictor{value: 2}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Beauty)
	m = pickDisplayed(t, m, date(2024, time.February, 29))

	assert.Equal(t, "2023-02-28", m.State().Date.String())
	assert.Equal(t, "2024-02-29", m.picker.Selected().String())

	m, msg := submit(t, m)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "2023-02-28", fake.calls[0].Date)
	m = update(t, m, msg)
	assert.Contains(t, m.State().Result(), "on 2024-02-29")

	m = update(t, m, keyMsg(tea.KeyEsc))
	m.focus = focusDate
	m = update(t, m, runeMsg("x"))
	assert.False(t, m.State().HasDate())
	assert.True(t, m.picker.Selected().IsZero())

	m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	assert.Equal(t, forecast.ValidationMessage, m.State().Err)
}

func TestInputChangeDiscardsPendingResult(t *testing.T) {
	fake := &fakePredictor{value: 9}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Beauty)
	m = pickDisplayed(t, m, date(2024, time.April, 4))

	m, msg := submit(t, m)
	// The user changes the category before the response is shown.
	m = chooseCategory(t, m, forecast.Clothing)
	m = update(t, m, msg)
	require.True(t, m.State().ModalVisible(), "late responses are applied as they arrive")

	m.state.SetCategory(forecast.Electronics)
	assert.Nil(t, m.State().Prediction)
}

func TestPickingAgainReplacesDate(t *testing.T) {
	m := newTestModel(t, &fakePredictor{}, 2024)
	m = pickDisplayed(t, m, date(2024, time.April, 4))
	require.Equal(t, "2023-04-04", m.State().Date.String())

	m = pickDisplayed(t, m, date(2024, time.August, 1))
	assert.Equal(t, "2023-08-01", m.State().Date.String())
	assert.Equal(t, "2024-08-01", m.picker.Selected().String())
}

func TestFormInputsDiscardShownResult(t *testing.T) {
	fake := &fakePredictor{value: 5}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Beauty)
	m = pickDisplayed(t, m, date(2024, time.April, 4))
	m, msg := submit(t, m)
	m = update(t, m, msg)
	require.True(t, m.State().ModalVisible())

	// While the modal is up, form keys go to the modal.
	m.focus = focusCategory
	m = update(t, m, keyMsg(tea.KeyRight))
	require.Equal(t, forecast.Beauty, m.State().Category)
	require.NotNil(t, m.State().Prediction)

	// The form handlers themselves drop the result on any change.
	next, _ := m.handleFormKey(keyMsg(tea.KeyRight))
	changed := next.(Model)
	assert.Equal(t, forecast.Clothing, changed.State().Category)
	assert.Nil(t, changed.State().Prediction)
	assert.False(t, changed.State().ModalVisible())

	m.focus = focusDate
	m.picker.MoveTo(date(2024, time.August, 1))
	next, _ = m.handleFormKey(keyMsg(tea.KeyEnter))
	changed = next.(Model)
	assert.Equal(t, "2023-08-01", changed.State().Date.String())
	assert.Nil(t, changed.State().Prediction)

	m.focus = focusDate
	next, _ = m.handleFormKey(runeMsg("x"))
	assert.Nil(t, next.(Model).State().Prediction)
	assert.Equal(t, 1, fake.callCount())
}

func TestCalendarTodayKey(t *testing.T) {
	old := today
	defer func() { today = old }()

	m := newTestModel(t, &fakePredictor{}, 2023)
	m.focus = focusDate

	today = func() forecast.Date { return date(2026, time.July, 14) }
	m = update(t, m, runeMsg("t"))
	assert.Equal(t, "2023-07-14", m.picker.Cursor().String())
	assert.False(t, m.State().HasDate(), "jumping does not select")

	today = func() forecast.Date { return date(2028, time.February, 29) }
	m = update(t, m, runeMsg("t"))
	assert.Equal(t, "2023-02-28", m.picker.Cursor().String())
}

func TestOverlappingSubmissionsAreNotDeduplicated(t *testing.T) {
	fake := &fakePredictor{value: 1}
	m := newTestModel(t, fake, 2024)
	m = chooseCategory(t, m, forecast.Beauty)
	m = pickDisplayed(t, m, date(2024, time.April, 4))

	m, first := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
	m, second := updateCmd(t, m, keyMsg(tea.KeyCtrlS))
	require.NotNil(t, first)
	require.NotNil(t, second)

	fake.value = 1
	m1 := first()
	fake.value = 2
	m2 := second()
	assert.Equal(t, 2, fake.callCount())

	m = update(t, m, m2)
	m = update(t, m, m1)
	assert.Equal(t, 1.0, *m.State().Prediction, "the last response to arrive wins")
}

func TestCalendarNavigation(t *testing.T) {
	m := newTestModel(t, &fakePredictor{}, 2024)
	m = update(t, m, keyMsg(tea.KeyTab))
	require.Equal(t, focusDate, m.focus)

	m = update(t, m, keyMsg(tea.KeyPgDown))
	m = update(t, m, keyMsg(tea.KeyDown))
	m = update(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, "2024-02-09", m.picker.Cursor().String())

	m = update(t, m, keyMsg(tea.KeyEnd))
	assert.Equal(t, "2024-02-29", m.picker.Cursor().String())
	m = update(t, m, keyMsg(tea.KeyHome))
	m = update(t, m, keyMsg(tea.KeyUp))
	assert.Equal(t, "2024-01-25", m.picker.Cursor().String())

	m = update(t, m, keyMsg(tea.KeyPgUp))
	m = update(t, m, keyMsg(tea.KeyPgUp))
	assert.Equal(t, "2024-01-01", m.picker.Cursor().String(), "cursor stops at the range start")

	view := m.View()
	assert.Contains(t, view, "January 2024")
	assert.False(t, m.State().HasDate(), "moving the cursor does not select")
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t, &fakePredictor{}, 2024)
	var seen []focusField
	for i := 0; i < 4; i++ {
		seen = append(seen, m.focus)
		m = update(t, m, keyMsg(tea.KeyTab))
	}
	assert.Equal(t, []focusField{focusCategory, focusDate, focusSubmit, focusCategory}, seen)
	require.Equal(t, focusDate, m.focus)

	m = update(t, m, keyMsg(tea.KeyShiftTab))
	assert.Equal(t, focusCategory, m.focus)
	m = update(t, m, keyMsg(tea.KeyShiftTab))
	assert.Equal(t, focusSubmit, m.focus, "shift+tab wraps backwards")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &fakePredictor{}, 2024)
	_, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_Stability(t *testing.T) {
	m := New(Config{Predictor: &fakePredictor{}, DisplayYear: 2024})
	for _, size := range []tea.WindowSizeMsg{{Width: 0, Height: 0}, {Width: 20, Height: 5}, {Width: 200, Height: 60}} {
		m = update(t, m, size)
		view := m.View()
		assert.True(t, strings.Contains(view, "Retail Sales Prediction"))
		assert.Contains(t, view, "Forecast Tomorrow's Sales, Today.")
	}
}
