package form

import (
	"context"

	"retailcast/internal/forecast"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// today is the calendar day the picker's "today" key jumps to.
var today = forecast.Today

// predictCmd runs one prediction request off the event loop.
func predictCmd(ctx context.Context, p Predictor, seq int, req forecast.Request) tea.Cmd {
	return func() tea.Msg {
		value, err := p.Predict(ctx, req)
		if err != nil {
			return predictionErrMsg{seq: seq, req: req, err: err}
		}
		return predictionMsg{seq: seq, req: req, value: value}
	}
}
