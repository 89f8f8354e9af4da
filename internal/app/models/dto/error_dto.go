package dto

import "time"

// ErrorSeverity represents the severity level of a backend error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityInfo     ErrorSeverity = "INFO"
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information from the backend
type ErrorDetail struct {
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Field    string        `json:"field,omitempty"`
	Severity ErrorSeverity `json:"severity,omitempty"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse is the backend's standard error envelope. The gateway decodes
// it on non-2xx responses; the message is surfaced to the user verbatim.
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse represents a plain success acknowledgement
type SuccessResponse struct {
	Message string `json:"message"`
}
