package form

import (
	"context"

	"retailcast/cmd/retailcast/ui"
	"retailcast/internal/forecast"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Predictor performs one prediction request.
type Predictor interface {
	Predict(ctx context.Context, req forecast.Request) (float64, error)
}

// Config holds configuration for initializing the form.
type Config struct {
	// Predictor is the prediction endpoint client. Required.
	Predictor Predictor

	// DisplayYear is the only year the date picker accepts.
	DisplayYear int

	// Styles defaults to ui.DefaultStyles().
	Styles *ui.Styles

	// Context bounds in-flight requests. Defaults to context.Background().
	Context context.Context
}

// focusField is the form control receiving key input.
type focusField int

const (
	focusCategory focusField = iota
	focusDate
	focusSubmit
	focusCount
)

func (f focusField) String() string {
	switch f {
	case focusCategory:
		return "category"
	case focusDate:
		return "date"
	case focusSubmit:
		return "submit"
	}
	return "unknown"
}

// =============================================================================
// MESSAGES
// =============================================================================

type (
	// predictionMsg carries a successful response. seq numbers submissions
	// for logs only: every response is applied as it arrives.
	predictionMsg struct {
		seq   int
		req   forecast.Request
		value float64
	}

	// predictionErrMsg carries a failed request.
	predictionErrMsg struct {
		seq int
		req forecast.Request
		err error
	}
)
