package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to conversation rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeNoMatch
	ErrorTypeNotSubscribed
	ErrorTypeUnrecognizedInput
	ErrorTypeForecastData

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeTransport
	ErrorTypeMessaging

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// User-facing transport messages. The dialogue forwards them to the chat verbatim.
const (
	ConnectionProblemMessage = "Your internet connection is bad, try again later."
	ServerProblemMessage     = "There is something wrong with the server, please try again later."
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNoMatch:
		return "NO_MATCH_ERROR"
	case ErrorTypeNotSubscribed:
		return "NOT_SUBSCRIBED_ERROR"
	case ErrorTypeUnrecognizedInput:
		return "UNRECOGNIZED_INPUT_ERROR"
	case ErrorTypeForecastData:
		return "FORECAST_DATA_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeMessaging:
		return "MESSAGING_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewNoMatchError(message string) *AppError {
	return New(ErrorTypeNoMatch, message)
}

func NewNotSubscribedError(message string) *AppError {
	return New(ErrorTypeNotSubscribed, message)
}

func NewUnrecognizedInputError(message string) *AppError {
	return New(ErrorTypeUnrecognizedInput, message)
}

func NewForecastDataError(message string) *AppError {
	return New(ErrorTypeForecastData, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDatabase, message, cause)
}

// NewConnectionError reports that the upstream could not be reached at all.
func NewConnectionError(cause error) *AppError {
	return Wrap(ErrorTypeTransport, ConnectionProblemMessage, cause)
}

// NewServerError reports a bad status, an undecodable body or an open breaker.
func NewServerError(cause error) *AppError {
	return Wrap(ErrorTypeTransport, ServerProblemMessage, cause)
}

func NewMessagingError(message string, cause error) *AppError {
	return Wrap(ErrorTypeMessaging, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// UserMessage returns the text to show a chat user for a transport failure.
func UserMessage(err error) (string, bool) {
	appErr, ok := As(err)
	if !ok || appErr.Type != ErrorTypeTransport {
		return "", false
	}
	return appErr.Message, true
}

func isType(err error, errorType ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == errorType
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

func IsNoMatchError(err error) bool {
	return isType(err, ErrorTypeNoMatch)
}

func IsNotSubscribedError(err error) bool {
	return isType(err, ErrorTypeNotSubscribed)
}

func IsUnrecognizedInputError(err error) bool {
	return isType(err, ErrorTypeUnrecognizedInput)
}

func IsForecastDataError(err error) bool {
	return isType(err, ErrorTypeForecastData)
}

func IsDatabaseError(err error) bool {
	return isType(err, ErrorTypeDatabase)
}

func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}

func IsMessagingError(err error) bool {
	return isType(err, ErrorTypeMessaging)
}

func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
