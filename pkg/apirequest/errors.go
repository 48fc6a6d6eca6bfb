package apirequest

import (
	"errors"
	"fmt"
	"net/http"
)

// Every failure of a tracked request wraps one of these, so callers holding
// the future's error can classify it with errors.Is. The tracker's state only
// keeps the message.
var (
	ErrInvalidURL       = errors.New("apirequest: invalid request URL")
	ErrEncodeBody       = errors.New("apirequest: failed to encode request body")
	ErrRequestFailed    = errors.New("apirequest: request failed")
	ErrUnexpectedStatus = errors.New("apirequest: unexpected response status")
	ErrDecodeResponse   = errors.New("apirequest: failed to decode response body")
	ErrResponseTooLarge = errors.New("apirequest: response body too large")
)

// StatusError reports a completed response with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
