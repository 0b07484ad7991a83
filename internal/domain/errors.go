package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation error")
	ErrUnknownBook           = errors.New("unknown book")
	ErrBadSyntax             = errors.New("bad reference syntax")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// ParseReason classifies a reference parse failure.
type ParseReason string

const (
	ReasonUnknownBook ParseReason = "UnknownBook"
	ReasonBadSyntax   ParseReason = "BadSyntax"
)

// ParseError is returned when a reference string cannot be resolved.
// Input carries the offending text so it can be echoed back to the caller.
type ParseError struct {
	Reason ParseReason
	Input  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parse reference %q: %s: %s", e.Input, e.Reason, e.Detail)
	}
	return fmt.Sprintf("parse reference %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	if e.Reason == ReasonUnknownBook {
		return ErrUnknownBook
	}
	return ErrBadSyntax
}

// NewUnknownBookError creates a ParseError for an unresolvable book token.
func NewUnknownBookError(input string) *ParseError {
	return &ParseError{Reason: ReasonUnknownBook, Input: input}
}

// NewBadSyntaxError creates a ParseError for malformed reference syntax.
func NewBadSyntaxError(input, detail string) *ParseError {
	return &ParseError{Reason: ReasonBadSyntax, Input: input, Detail: detail}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
