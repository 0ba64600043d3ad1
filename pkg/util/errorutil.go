package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// StatusCoder is implemented by errors that know their HTTP status class.
type StatusCoder interface {
	error
	StatusCode() int
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Errors carrying their
// own status keep their top-level message; the wrapped causes stay in Err for
// logging and are never rendered to clients.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var coder StatusCoder
	if errors.As(err, &coder) {
		status := coder.StatusCode()
		code := "INTERNAL_ERROR"
		switch {
		case status == http.StatusBadRequest:
			code = "VALIDATION_FAILED"
		case status < http.StatusInternalServerError:
			code = "REQUEST_FAILED"
		}
		return &DomainError{Code: code, Message: coder.Error(), HTTPStatus: status, Err: err}
	}
	return NewInternalError(err).(*DomainError)
}
