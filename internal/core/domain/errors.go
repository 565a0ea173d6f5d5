// Package domain defines the core domain types for otpowner.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "OTP-SRC-5030")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

var (
	// ErrSourceUnavailable indicates the registry table could not be
	// opened, read or parsed.
	ErrSourceUnavailable = NewDomainError("OTP-SRC-5030", "token table unavailable")

	// ErrMalformedRow marks a table row with fewer than MinRowFields fields.
	// Such rows are skipped during load and never reach a caller.
	ErrMalformedRow = NewDomainError("OTP-ROW-4220", "malformed table row")

	// ErrInvalidOTPShape indicates forward input is not "ubnu" followed by eight digits.
	ErrInvalidOTPShape = NewDomainError("OTP-FMT-4000", "OTP must start with 'ubnu' followed by eight digits")

	// ErrNoMatch indicates a well-formed query matched no row.
	ErrNoMatch = NewDomainError("OTP-REG-4040", "no match found")

	// ErrInvalidArgument indicates an invalid flag or configuration value.
	ErrInvalidArgument = NewDomainError("OTP-ARG-4001", "invalid argument")
)
