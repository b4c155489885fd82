package relay

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcelsud/webhook-relay/relay/payload"
)

var (
	// ErrRouteNotFound is returned when no route matches the request path
	ErrRouteNotFound = errors.New("route not found")
	// ErrMalformedBody is returned when the inbound body is not valid JSON
	ErrMalformedBody = errors.New("malformed inbound body")
	// ErrMissingField aliases the extractor error so callers need one import
	ErrMissingField = payload.ErrMissingField
)

// TransportError is returned when the outbound call could not complete
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("forwarding to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode maps a dispatch error to the status returned to the inbound caller
func StatusCode(err error) int {
	var transportErr *TransportError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingField):
		return http.StatusUnprocessableEntity
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// OutcomeOf maps a dispatch error to its outcome
func OutcomeOf(err error) Outcome {
	var transportErr *TransportError
	switch {
	case err == nil:
		return Forwarded
	case errors.Is(err, ErrRouteNotFound):
		return NotFound
	case errors.Is(err, ErrMalformedBody):
		return MalformedBody
	case errors.Is(err, ErrMissingField):
		return MissingField
	case errors.As(err, &transportErr):
		return TransportFailed
	default:
		return 0
	}
}
