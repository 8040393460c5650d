package llm

import (
	"fmt"
	"time"
)

// ServiceError is the base error for LLM provider failures: network errors,
// authentication problems, and non-success responses. Callers surface the
// message as a chat answer substitute and keep the session alive.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	Err        error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("llm service: %v", e.Err)
	case e.StatusCode > 0 && e.Message != "":
		if e.RequestID != "" {
			return fmt.Sprintf("llm service: status=%d request_id=%s message=%s", e.StatusCode, e.RequestID, e.Message)
		}
		return fmt.Sprintf("llm service: status=%d message=%s", e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("llm service: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("llm service: %s", e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// AuthError indicates authentication/authorization failures (401/403),
// including a missing or invalid API key.
type AuthError struct{ *ServiceError }

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.ServiceError.Error())
}

// RateLimitError indicates 429 responses and may carry a Retry-After hint.
type RateLimitError struct {
	*ServiceError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: wait about %ds before asking again: %s", int(e.RetryAfter.Seconds()), e.ServiceError.Error())
	}
	return fmt.Sprintf("rate limited: %s", e.ServiceError.Error())
}

// BadRequestError indicates a 400-level request problem.
type BadRequestError struct{ *ServiceError }

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.ServiceError.Error())
}

// ServerError indicates 5xx errors from the provider.
type ServerError struct{ *ServiceError }

func (e *ServerError) Error() string {
	return fmt.Sprintf("provider error: %s", e.ServiceError.Error())
}
