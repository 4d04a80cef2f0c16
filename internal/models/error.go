package models

import (
	"errors"
)

// Lookup errors returned by the services
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrPizzaNotFound      = errors.New("pizza not found")
	// ErrInvalidReference is returned when a restaurant pizza points at a missing row
	ErrInvalidReference = errors.New("referenced restaurant or pizza does not exist")
)

// Messages exposed in response bodies
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	// MsgValidationErrors is reported for every creation failure that is not a price error
	MsgValidationErrors = "validation errors"
)

// ValidationError reports a field value that breaks a model rule
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorResponse is the body returned for lookups that fail
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a creation is rejected
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation body with the given messages
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return ValidationErrorResponse{Errors: messages}
}
