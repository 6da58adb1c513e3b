package domain

import (
	"errors"
	"fmt"
)

// Domain Const errors
var (
	ErrNotConfigured   = errors.New("no messaging providers configured")
	ErrUnknownProvider = errors.New("provider not configured")
	ErrInvalidInput    = errors.New("invalid input")
	ErrProviderError   = errors.New("external provider error")
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e.Errors[0].Error())
}

func (e ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// ProviderError is returned by a Sender when the provider rejects a message
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider %s (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

func (e ProviderError) Unwrap() error {
	return ErrProviderError
}

func NewProviderError(provider string, statusCode int, message string) ProviderError {
	return ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
	}
}

// SendError wraps any error raised by the notifier during a send
type SendError struct {
	Err error
}

func (e SendError) Error() string {
	return "Failed to send notification: " + e.Err.Error()
}

func (e SendError) Unwrap() error {
	return e.Err
}
