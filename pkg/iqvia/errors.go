package iqvia

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidZIP is matched by every invalid ZIP failure, whether it was
	// caught locally or signalled by the forecast service.
	ErrInvalidZIP = errors.New("invalid ZIP code")

	// ErrUnsupportedForecast is returned for a category/kind pair the
	// service does not publish (e.g. an asthma outlook).
	ErrUnsupportedForecast = errors.New("unsupported forecast")
)

// InvalidZIPError reports a ZIP code that is malformed or unknown to the service.
type InvalidZIPError struct {
	ZIP    string
	Reason string
}

func (e *InvalidZIPError) Error() string {
	return fmt.Sprintf("invalid ZIP code %q: %s", e.ZIP, e.Reason)
}

func (e *InvalidZIPError) Unwrap() error {
	return ErrInvalidZIP
}

// StatusError reports a non-2xx answer that does not map to an invalid ZIP.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code: %d", e.URL, e.StatusCode)
}
