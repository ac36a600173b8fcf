package azuredevops

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types for Azure DevOps API responses.
var (
	// ErrUnauthorised indicates the credentials are invalid or expired.
	ErrUnauthorised = errors.New("azure devops: unauthorised")

	// ErrForbidden indicates the credentials lack access to the profile.
	ErrForbidden = errors.New("azure devops: forbidden")

	// ErrNotFound indicates the endpoint does not exist, usually a wrong collection URL.
	ErrNotFound = errors.New("azure devops: not found")

	// ErrRateLimited indicates the request was throttled.
	ErrRateLimited = errors.New("azure devops: rate limited")

	// ErrBadRequest indicates the request was malformed.
	ErrBadRequest = errors.New("azure devops: bad request")

	// ErrSignInRequired indicates the server answered with a sign-in page
	// instead of the API response.
	ErrSignInRequired = errors.New("azure devops: sign-in page returned")

	// ErrServerError indicates a server-side error.
	ErrServerError = errors.New("azure devops: server error")

	// ErrUnexpectedStatus covers any other non-success status.
	ErrUnexpectedStatus = errors.New("azure devops: unexpected status")
)

// StatusError is returned for any response that is not a usable success.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode exposes the status code without importing this package.
func (e *StatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// WrapError converts an HTTP status code to an appropriate error.
// Returns nil for a usable success.
func WrapError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorised
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNonAuthoritativeInfo:
		return ErrSignInRequired
	}
	switch {
	case statusCode >= 500:
		return ErrServerError
	case statusCode >= 200 && statusCode < 300:
		return nil
	default:
		return ErrUnexpectedStatus
	}
}

// IsAuthFailure checks if the status code means the credentials were rejected.
func IsAuthFailure(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}
