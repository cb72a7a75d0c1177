package errors

import (
	"fmt"
)

// ErrorType classifies the failure boundaries of a report run. The pipeline
// only fails at its edges: reading the survey source and writing the output
// artifacts. Everything in between degrades to absent values instead.
type ErrorType string

const (
	ErrTypeInputNotFound ErrorType = "INPUT_NOT_FOUND"
	ErrTypeOutputWrite   ErrorType = "OUTPUT_WRITE"
	ErrTypeConfig        ErrorType = "CONFIG"
)

// AppError represents an application-specific error with a type code,
// a human-readable message, and an optional wrapped cause.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	return appErr.Type == errType
}

// Helper functions for the run's failure boundaries

// NewInputNotFoundError creates an error for a missing or unreadable
// survey source. The message names the failing path so the operator can
// act on it.
func NewInputNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeInputNotFound,
		fmt.Sprintf("input file does not exist or cannot be read: %s", path), cause).
		WithContext("path", path)
}

// NewOutputWriteError creates an error for a failed artifact write.
func NewOutputWriteError(path string, cause error) *AppError {
	return NewAppError(ErrTypeOutputWrite,
		fmt.Sprintf("failed to write output: %s", path), cause).
		WithContext("path", path)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
