package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewInputError returns an error for text too short or empty to extract from.
// This is the only fatal error the extraction pipeline produces.
func NewInputError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Input text is not extractable",
		Detail:  detail,
	}
}

// NewOracleError returns an error for a failed or unparseable AI oracle call.
// Callers recover from it by falling back to heuristic-only results.
func NewOracleError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "AI oracle call failed",
		Detail:  detail,
	}
}

// IsInputError reports whether err is a fatal input error
func IsInputError(err error) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code == http.StatusUnprocessableEntity
	}
	return false
}

// IsOracleError reports whether err is a recoverable oracle failure
func IsOracleError(err error) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code == http.StatusBadGateway
	}
	return false
}
