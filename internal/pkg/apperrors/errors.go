package apperrors

import "errors"

// Client-side validation errors (detected before any network call)
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrRequiredField    = errors.New("required field missing")
	ErrDuplicateRecord  = errors.New("duplicate record")
)

// Backend and transport errors
var (
	// ErrBackendRejected covers 4xx responses other than 401; the backend's
	// message body is preserved on the wrapping CustomError.
	ErrBackendRejected = errors.New("request rejected by backend")

	// ErrUnauthorized is a 401. It is propagated, never auto-handled: forcing
	// a logout/redirect here caused redirect storms in earlier revisions.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServerFailure is a 5xx response.
	ErrServerFailure = errors.New("backend server failure")

	// ErrTransport is a network or timeout failure before any response arrived.
	ErrTransport = errors.New("transport failure")
)

// Workflow errors
var (
	ErrUploadInFlight   = errors.New("an upload is already in progress")
	ErrNoSession        = errors.New("no active session")
	ErrPermissionDenied = errors.New("permission denied")
)

// CustomError carries additional context around a sentinel error
type CustomError struct {
	Err     error
	Message string
	Code    string
	Status  int
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode attaches the backend's error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatus attaches the HTTP status the backend answered with
func (e *CustomError) WithStatus(status int) *CustomError {
	e.Status = status
	return e
}

// WithDetails attaches context details
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a client-side validation error for a field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewDuplicateError creates a client-side duplicate-detection error
func NewDuplicateError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateRecord,
		Message: message,
	}
}
