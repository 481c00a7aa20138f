package app

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// TooManyRequestsError is returned when local rate limiter refuses to wait for a free slot.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by local rate limiting.
func IsTooManyRequestsError(err error) bool {
	var tmr TooManyRequestsError
	return errors.As(err, &tmr)
}

// TimeoutError is returned when a roast doesn't finish within the service timeout.
type TimeoutError string

// Error implements error interface
func (e TimeoutError) Error() string {
	return string(e)
}

// IsTimeoutError checks if given error is caused by exceeding the service timeout.
func IsTimeoutError(err error) bool {
	var te TimeoutError
	return errors.As(err, &te)
}

// UpstreamFetchError is returned when github responds with non-success http status.
type UpstreamFetchError struct {
	Resource    string
	StatusCode  int
	RateLimited bool
}

// Error implements error interface
func (e *UpstreamFetchError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("github %s fetch failed with status %d: rate limit exceeded", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("github %s fetch failed with status %d", e.Resource, e.StatusCode)
}

// IsUpstreamFetchError checks if given error is caused by non-success upstream status.
func IsUpstreamFetchError(err error) bool {
	var ufe *UpstreamFetchError
	return errors.As(err, &ufe)
}

// GraphQLError is returned when github graphql api responds with an errors array.
type GraphQLError struct {
	Messages []string
}

// Error implements error interface
func (e *GraphQLError) Error() string {
	if len(e.Messages) == 0 {
		return "github graphql api returned errors"
	}
	return "github graphql api returned errors: " + strings.Join(e.Messages, "; ")
}

// IsGraphQLError checks if given error is caused by graphql-level errors.
func IsGraphQLError(err error) bool {
	var ge *GraphQLError
	return errors.As(err, &ge)
}

// GenerationError is returned when the language model call fails or yields no text.
type GenerationError struct {
	Err error
}

// Error implements error interface
func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generating roast: empty model response"
	}
	return "generating roast: " + e.Err.Error()
}

// Unwrap returns the underlying model error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError checks if given error is caused by the language model.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
