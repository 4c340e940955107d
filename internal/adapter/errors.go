package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing fallbacks used when a failure carries no text of its own.
const (
	MessageRequestFailed = "request failed"
	MessageNetworkError  = "network error"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedEnvelope is returned when a response is not a valid
	// {code, message, data} envelope or its data does not decode.
	ErrMalformedEnvelope = errors.New("malformed response envelope")

	// ErrInvalidID is returned for non-positive knowledge ids before any
	// request is made.
	ErrInvalidID = errors.New("invalid knowledge id")

	// ErrRequestRejected wraps failures of the request interceptor.
	ErrRequestRejected = errors.New("request rejected")
)

// APIError is returned when the backend answers with an envelope whose code
// is not 200. It matches the sentinel of the same HTTP meaning, so
// errors.Is(err, ErrNotFound) holds for code 404.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	sentinel := sentinelForStatus(e.Code)
	return sentinel != nil && sentinel == target
}

// UserMessage is the text shown to the user for this error.
func (e *APIError) UserMessage() string {
	if e.Message == "" {
		return MessageRequestFailed
	}
	return e.Message
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}
