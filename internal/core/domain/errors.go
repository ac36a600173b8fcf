package domain

import "errors"

// Error kinds. Every failure returned by IdentityService matches exactly one
// of these with errors.Is.
var (
	// ErrValidation indicates the input could not be interpreted.
	// The caller must fix the input; retrying will not help.
	ErrValidation = errors.New("azure devops: validation failed")

	// ErrAuthentication indicates credentials could not be acquired or
	// were rejected by the server (401/403).
	ErrAuthentication = errors.New("azure devops: authentication failed")

	// ErrAzureDevOps is the generic kind for any other failure.
	ErrAzureDevOps = errors.New("azure devops: request failed")
)

// Error is a classified failure. It unwraps to both its Kind and its cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error returns the message followed by the cause, if any.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap exposes the kind and the root cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewValidationError creates an error of kind ErrValidation.
func NewValidationError(message string, cause error) *Error {
	return &Error{Kind: ErrValidation, Message: message, Err: cause}
}

// NewAuthenticationError creates an error of kind ErrAuthentication.
func NewAuthenticationError(message string, cause error) *Error {
	return &Error{Kind: ErrAuthentication, Message: message, Err: cause}
}

// NewAzureDevOpsError creates an error of the generic kind.
func NewAzureDevOpsError(message string, cause error) *Error {
	return &Error{Kind: ErrAzureDevOps, Message: message, Err: cause}
}

// KindOf returns the kind of a classified error, or nil if err carries none.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
