package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgValidation = "Validation errors"

// respondError is the single place where errors become HTTP responses.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := errorResponse(err)

	logger := middleware.GetLoggerFromContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Debug("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		appErr    *apperrors.AppError
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, dto.Fail(msgValidation, validationFields(verrs)...)
	case errors.As(err, &typeErr):
		return http.StatusBadRequest, dto.Fail(msgValidation,
			apperrors.FieldError{Field: typeErr.Field, Message: fmt.Sprintf("%s has the wrong type", typeErr.Field)})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, dto.Fail("Invalid request body")
	case errors.As(err, &appErr) && appErr.Code != 0:
		msg := appErr.Message
		if appErr.Code >= http.StatusInternalServerError && gin.IsDebugging() && appErr.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, appErr.Err)
		}
		return appErr.Code, dto.Fail(msg, appErr.Errors...)
	}

	status := apperrors.StatusCode(err)
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return status, dto.Fail("Invalid email or password")
	case errors.Is(err, apperrors.ErrInvalidToken):
		return status, dto.Fail("Invalid or expired token")
	case status == http.StatusInternalServerError:
		if gin.IsDebugging() {
			return status, dto.Fail("Internal server error: " + err.Error())
		}
		return status, dto.Fail("Internal server error")
	default:
		return status, dto.Fail(http.StatusText(status))
	}
}

func validationFields(verrs validator.ValidationErrors) []apperrors.FieldError {
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email"
	case "strongpassword":
		return "Password must be 8 characters to 72 bytes long and contain an uppercase letter, a lowercase letter and a number"
	case "eqfield":
		return "Passwords do not match"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// bindJSON binds the body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// requireUserID returns the caller's id, answering 401 when none is attached.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized - Invalid or expired token"))
		return "", false
	}
	return userID, true
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.OKWithMessage(message, data))
}
