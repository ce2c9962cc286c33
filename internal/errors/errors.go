// Package errors provides custom error types and utilities for filemgmt.
//
// Errors fall into two categories:
// - Usage errors: wrong argument count, unparsable numbers, unknown selectors
// - Resource errors: open/create/stat/seek/read/write failures on a path
package errors

import (
	"errors"
	"fmt"
)

// Error categories for filemgmt operations
var (
	ErrUsage    = errors.New("usage error")
	ErrResource = errors.New("resource error")
)

// UsageError represents a command line that cannot be executed as given.
// It is always reported before any file is touched.
type UsageError struct {
	Option  string
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new usage error
func NewUsageError(option, message string) *UsageError {
	return &UsageError{
		Option:  option,
		Message: message,
	}
}

// Usagef creates a usage error with a formatted message
func Usagef(option, format string, args ...any) *UsageError {
	return NewUsageError(option, fmt.Sprintf(format, args...))
}

// ResourceError represents a failed operation on a file.
type ResourceError struct {
	Op      string
	Path    string
	Message string
	Err     error
}

func (e *ResourceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func (e *ResourceError) Is(target error) bool {
	return target == ErrResource
}

// NewResourceError creates a new resource error
func NewResourceError(op, path, message string, err error) *ResourceError {
	return &ResourceError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// IsUsage checks if an error is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsResource checks if an error is a resource error
func IsResource(err error) bool {
	return errors.Is(err, ErrResource)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return &MultiError{Errors: nonNilErrors}
}
