package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Generation pipeline errors
	CodeEmptyResponse   ErrorCode = "EMPTY_RESPONSE"
	CodeMalformedOutput ErrorCode = "MALFORMED_OUTPUT"
	CodeSchemaViolation ErrorCode = "SCHEMA_VIOLATION"
	CodeUpstreamService ErrorCode = "UPSTREAM_SERVICE_ERROR"

	// Persistence errors
	CodePersistence ErrorCode = "PERSISTENCE_ERROR"
)

// DomainError represents a domain-specific error. Message is safe to return
// to clients; Cause carries diagnostics and is only ever logged.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewAlreadyExistsError(message string) *DomainError {
	return NewError(CodeAlreadyExists, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewEmptyResponseError signals that the generation service returned an empty
// completion string.
func NewEmptyResponseError() *DomainError {
	return NewError(CodeEmptyResponse, "Generation service returned an empty response", nil)
}

// NewMalformedOutputError signals that no parseable JSON array could be
// recovered from a completion. The parse error is kept as the cause for
// diagnostics and never surfaces in client responses.
func NewMalformedOutputError(cause error) *DomainError {
	return NewError(CodeMalformedOutput, "Generation service returned invalid JSON", cause)
}

// NewSchemaViolationError signals that parsed JSON was structurally valid but
// an element at the given index failed shape validation.
func NewSchemaViolationError(index int, detail string) *DomainError {
	return NewError(CodeSchemaViolation,
		fmt.Sprintf("Generated item at index %d is invalid: %s", index, detail), nil)
}

func NewUpstreamServiceError(cause error) *DomainError {
	return NewError(CodeUpstreamService, "Text generation service request failed", cause)
}

func NewPersistenceError(message string, cause error) *DomainError {
	return NewError(CodePersistence, message, cause)
}
