package openrouter

import (
	"fmt"
	"time"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter: status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return domain.ErrUpstream }

// ParsingError is returned when a 2xx response does not carry the expected
// envelope or content.
type ParsingError struct {
	Message string
	Body    string
}

func (e *ParsingError) Error() string {
	return "openrouter: " + e.Message
}

func (e *ParsingError) Unwrap() error { return domain.ErrUpstreamResponse }

// TimeoutError is returned when the per-request timeout elapses before the
// provider responds.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("openrouter: request timed out after %dms", e.Timeout.Milliseconds())
}

func (e *TimeoutError) Unwrap() error { return domain.ErrUpstreamTimeout }
