package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but lacks permission.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned for every failed local login, whatever the reason.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken is the parent of every token verification failure.
var ErrInvalidToken = errors.New("invalid or expired token")

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an error that carries the HTTP status the boundary should answer with.
type AppError struct {
	Code    int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewValidationFailedError reports a 400 with an optional list of offending fields.
func NewValidationFailedError(message string, fields ...FieldError) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Errors: fields, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError reports a duplicate on a unique field. field may be empty when unknown.
func NewConflictError(message string, field ...string) *AppError {
	appErr := &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
	for _, f := range field {
		appErr.Errors = append(appErr.Errors, FieldError{Field: f, Message: f + " already exists"})
	}
	return appErr
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}

// StatusCode resolves the HTTP status for any error produced by the application.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
