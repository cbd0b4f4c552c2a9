package refresher

import "fmt"

// ErrorType categorizes transport failures
type ErrorType string

const (
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeInvalidURL ErrorType = "invalid_url"
	ErrorTypeCancelled  ErrorType = "cancelled"
)

// FetchError is returned when a link produced no HTTP response
type FetchError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Detail is the text written to the run log for this failure.
func (e *FetchError) Detail() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func newTimeoutError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeTimeout,
		Message: "Request timed out",
		Cause:   cause,
	}
}

func newNetworkError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		Message: "Network error",
		Cause:   cause,
	}
}

func newInvalidURLError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeInvalidURL,
		Message: "Invalid URL",
		Cause:   cause,
	}
}

func newCancelledError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeCancelled,
		Message: "Operation cancelled",
		Cause:   cause,
	}
}
