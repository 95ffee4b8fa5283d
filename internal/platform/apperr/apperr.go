// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type every handler renders.

Services return an [*AppError] (possibly wrapped with fmt.Errorf) for anything
a client should see. Anything else reaching the response writer is treated as
an internal failure and hidden behind a generic 500.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Codes

// Machine-readable codes carried in the "code" field of error responses.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUnprocessable = "UNPROCESSABLE"
	CodeRateLimited   = "RATE_LIMITED"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError pairs a client-safe message with its status and code.
//
// Cause is only ever logged.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Cause      error
	Details    []FieldError
}

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

func newError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # 4xx

// BadRequest is a 400 for a rule the request broke as a whole, such as a taken
// username, as opposed to per-field validation.
func BadRequest(msg string) *AppError {
	return newError(http.StatusBadRequest, CodeBadRequest, msg)
}

// ValidationError is a 400 listing each failed field.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError(http.StatusBadRequest, CodeValidation, msg)
	err.Details = details
	return err
}

// Unauthorized is a 401.
func Unauthorized(msg string) *AppError {
	return newError(http.StatusUnauthorized, CodeUnauthorized, msg)
}

// Forbidden is a 403.
func Forbidden(msg string) *AppError {
	return newError(http.StatusForbidden, CodeForbidden, msg)
}

// NotFound is a 404 reading "<resource> not found".
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

// Conflict is a 409. Stores return it for unique violations; services usually
// translate it into the status their endpoint documents.
func Conflict(msg string) *AppError {
	return newError(http.StatusConflict, CodeConflict, msg)
}

// Unprocessable is a 422.
func Unprocessable(msg string) *AppError {
	return newError(http.StatusUnprocessableEntity, CodeUnprocessable, msg)
}

// RateLimited is a 429 telling the client how long to back off.
func RateLimited(retryAfterSeconds int) *AppError {
	return newError(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// # 5xx

// Internal is a 500 with a fixed message. cause stays server-side.
func Internal(cause error) *AppError {
	err := newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// # Inspection

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var target *AppError
	if errors.As(err, &target) {
		return target
	}
	return nil
}

// IsCode reports whether err's chain holds an [*AppError] with code.
func IsCode(err error, code string) bool {
	target := As(err)
	return target != nil && target.Code == code
}
