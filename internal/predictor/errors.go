package predictor

import (
	"errors"
	"fmt"
)

// GenericMessage is shown for failures that carry no server detail.
const GenericMessage = "Server not responding"

// ErrMalformed marks a response whose body could not be used: a success
// body without a numeric prediction, or an error body without a detail.
var ErrMalformed = errors.New("malformed predictor response")

// DetailError is a structured failure: the endpoint answered with a
// non-2xx status and a human-readable detail.
type DetailError struct {
	StatusCode int
	Detail     string
}

func (e *DetailError) Error() string {
	return fmt.Sprintf("predictor returned status %d: %s", e.StatusCode, e.Detail)
}

// TransportError means no response was received at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("predictor request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage returns the text the form shows for err: the server detail
// when there is one, GenericMessage otherwise.
func UserMessage(err error) string {
	var de *DetailError
	if errors.As(err, &de) && de.Detail != "" {
		return de.Detail
	}
	return GenericMessage
}
