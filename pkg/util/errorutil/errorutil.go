package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by the console and its backend client.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeRejected     = "BACKEND_REJECTED"
	CodeUnreachable  = "BACKEND_UNREACHABLE"
	CodeInternal     = "INTERNAL_ERROR"
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

// NewRejected wraps a failure the backend reported in its response body.
func NewRejected(message string) error {
	return NewDomainError(CodeRejected, message, http.StatusUnprocessableEntity, nil)
}

// NewUnreachable wraps transport failures and unexpected backend statuses.
func NewUnreachable(err error, details map[string]any) error {
	return &DomainError{
		Code:       CodeUnreachable,
		Message:    "backend unavailable",
		HTTPStatus: http.StatusBadGateway,
		Details:    details,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// IsUnauthorized reports whether the session behind err has expired.
func IsUnauthorized(err error) bool {
	return HasCode(err, CodeUnauthorized)
}

// UserMessage picks the string shown on a page for a failed backend call.
// Backend-reported failures surface the backend's own message and fall back
// to rejected; everything else collapses to network.
func UserMessage(err error, rejected, network string) string {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case CodeRejected:
			if domainErr.Message != "" {
				return domainErr.Message
			}
			return rejected
		case CodeValidation:
			return domainErr.Message
		case CodeNotFound:
			return rejected
		}
	}
	return network
}
