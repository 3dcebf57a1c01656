// Package errors provides the unified error type and factory functions for
// the LegalAI analysis module.  Every layer (intelligence, application,
// infrastructure, interfaces) uses AppError as the single carrier for
// structured error information so logging and fallback decisions can match
// on typed codes instead of string comparison.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout the module.
// It satisfies the standard error interface and supports Go 1.13+ wrapping so
// errors.Is / errors.As / errors.Unwrap work transparently across layers.
//
// Usage:
//
//	return errors.New(errors.ErrCodeModelNotLoaded, "no artifact for task clause_type")
//	return errors.Wrap(err, errors.ErrCodeStorageFailure, "failed to persist artifact")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description.
	Message string

	// Detail carries supplementary context (task names, paths, thresholds)
	// that aids debugging without bloating Message.
	Detail string

	// Cause is the underlying error, enabling errors.Is / errors.As
	// traversal of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>"; the detail segment is omitted when
// Detail is empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.  Safe to
// call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs a fresh AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError that wraps an existing error.  If err is nil,
// Wrap returns nil so it can be used inline on call results.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.  It is the idiomatic way to branch on failure modes:
//
//	if errors.IsCode(err, errors.ErrCodeStrategyUnavailable) { ... fall back }
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain,
// or ErrCodeInternal when none is found.
func GetCode(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}

// IsUnavailable reports whether err marks an absent capability that the
// orchestrator should silently fall back from.
func IsUnavailable(err error) bool {
	return IsCode(err, ErrCodeStrategyUnavailable) ||
		IsCode(err, ErrCodeModelNotLoaded) ||
		IsCode(err, ErrCodeArtifactNotFound) ||
		IsCode(err, ErrCodeServiceUnavailable)
}

// NewInvalidInputError constructs a validation error.
func NewInvalidInputError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NewModelNotLoadedError constructs the explicit "model unavailable" result
// returned when no artifact is loaded for a task.
func NewModelNotLoadedError(task string) *AppError {
	return New(ErrCodeModelNotLoaded, "model not loaded").WithDetail("task=" + task)
}

// As and Is are re-exported so callers don't need to import both this package
// and the standard library errors package.
func As(err error, target interface{}) bool { return errors.As(err, target) }
func Is(err, target error) bool             { return errors.Is(err, target) }
