package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyAddress is returned when no backend address is configured.
	ErrEmptyAddress = errors.New("empty address")
	// ErrAddressWithoutHost is returned when the backend address has no
	// scheme or host after normalisation.
	ErrAddressWithoutHost = errors.New("address must include host and scheme")
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the trimmed response body, possibly empty.
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}
