package errors

import (
	"fmt"
)

type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

var (
	ErrMissingAPIKey = New(
		"MISSING_API_KEY",
		"ANTHROPIC_API_KEY is not set; scan sources are unavailable",
	)

	ErrMalformedResponse = New(
		"MALFORMED_RESPONSE",
		"Candidate source returned data that is not a JSON event array",
	)

	ErrCatalogWrite = New(
		"CATALOG_WRITE_FAILED",
		"Failed to persist the event catalog",
	)
)
