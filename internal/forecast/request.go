package forecast

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when a request is built without both a
// category and a date.
var ErrIncomplete = errors.New("category and date are both required")

// Request is the JSON body sent to the prediction endpoint.
type Request struct {
	Category string `json:"category"`
	Date     string `json:"date"`
}

// NewRequest builds the payload for category c on stored date d.
func NewRequest(c Category, d Date) (Request, error) {
	if c == "" || d.IsZero() {
		return Request{}, ErrIncomplete
	}
	if !c.Valid() {
		return Request{}, fmt.Errorf("%w %q", ErrUnknownCategory, string(c))
	}
	return Request{Category: string(c), Date: d.String()}, nil
}

// Summary is the sentence shown for a prediction of value units of c,
// sold on the displayed date.
func Summary(value float64, c Category, displayed Date) string {
	return fmt.Sprintf("%.2f units of %s will be sold on %s", value, c, displayed)
}
