package forecast

import "errors"

// ValidationMessage is shown when a submission lacks a category or a date.
const ValidationMessage = "Please select both a category and a date."

// State is the single record behind the form. Fields change only through
// the transition methods so a stale prediction never survives next to a
// new error.
type State struct {
	Category   Category
	Date       Date
	Prediction *float64
	Err        string
}

// HasDate reports whether a date is selected.
func (s State) HasDate() bool { return !s.Date.IsZero() }

// SetCategory selects c. A prediction fetched for the old inputs is
// discarded.
func (s *State) SetCategory(c Category) {
	if s.Category == c {
		return
	}
	s.Category = c
	s.Prediction = nil
}

// SetDate selects the stored date d. A prediction fetched for the old
// inputs is discarded.
func (s *State) SetDate(d Date) {
	if s.Date == d {
		return
	}
	s.Date = d
	s.Prediction = nil
}

// ClearDate unsets the date.
func (s *State) ClearDate() {
	s.SetDate(Date{})
}

// BeginSubmit starts a submission attempt. It clears the previous result
// and error, then either returns the request to send or records the
// validation error and returns ok=false, in which case nothing is sent.
func (s *State) BeginSubmit() (req Request, ok bool) {
	s.Err = ""
	s.Prediction = nil

	req, err := NewRequest(s.Category, s.Date)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			s.Err = ValidationMessage
		} else {
			s.Err = err.Error()
		}
		return Request{}, false
	}
	return req, true
}

// Succeed records a returned prediction and clears any error.
func (s *State) Succeed(value float64) {
	s.Err = ""
	s.Prediction = &value
}

// Fail records a failed submission. The prediction is always cleared.
func (s *State) Fail(message string) {
	s.Prediction = nil
	s.Err = message
}

// Dismiss closes the result modal.
func (s *State) Dismiss() {
	s.Prediction = nil
}

// ModalVisible reports whether the result modal is shown.
func (s State) ModalVisible() bool {
	return s.Prediction != nil && s.HasDate()
}

// ErrorVisible reports whether the error line is shown. The modal and the
// error line are never presented together.
func (s State) ErrorVisible() bool {
	return s.Err != "" && !s.ModalVisible()
}

// DisplayDate returns the picker-facing form of the selected date.
func (s State) DisplayDate() Date {
	return ToDisplayDate(s.Date)
}

// Result returns the modal sentence, or "" when the modal is hidden.
func (s State) Result() string {
	if !s.ModalVisible() {
		return ""
	}
	return Summary(*s.Prediction, s.Category, s.DisplayDate())
}
