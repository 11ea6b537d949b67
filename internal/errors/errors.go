package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ConfigInvalid indicates the engine configuration failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// LexiconInvalid indicates the lexicon failed structural validation
	LexiconInvalid ErrorCode = "LEXICON_INVALID"
	// PatternInvalid indicates a configured regex did not compile
	PatternInvalid ErrorCode = "PATTERN_INVALID"
	// UnknownEvent indicates a reference to an event kind the lexicon does not define
	UnknownEvent ErrorCode = "UNKNOWN_EVENT"
	// UnknownAsset indicates a reference to an asset id the lexicon does not define
	UnknownAsset ErrorCode = "UNKNOWN_ASSET"
	// UnknownMechanism indicates a reference to a mechanism id the lexicon does not define
	UnknownMechanism ErrorCode = "UNKNOWN_MECHANISM"
	// InputMissing indicates the input corpus file was not found or unreadable
	InputMissing ErrorCode = "INPUT_MISSING"
	// InputInvalid indicates the input corpus could not be parsed
	InputInvalid ErrorCode = "INPUT_INVALID"
	// ExportFailed indicates the graph could not be written
	ExportFailed ErrorCode = "EXPORT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// EngineError represents an mkg error with a stable code and message
type EngineError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new EngineError
func New(code ErrorCode, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// Newf creates a new EngineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new EngineError wrapping a cause
func Wrap(code ErrorCode, cause error, message string) *EngineError {
	return &EngineError{Code: code, Message: message, cause: cause}
}

// Wrapf creates a new EngineError wrapping a cause with a formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *EngineError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *EngineError) WithDetails(details interface{}) *EngineError {
	e.Details = details
	return e
}

// CodeOf extracts the ErrorCode from err, returning InternalError for
// errors that are not EngineErrors.
func CodeOf(err error) ErrorCode {
	if ee, ok := err.(*EngineError); ok {
		return ee.Code
	}
	return InternalError
}
