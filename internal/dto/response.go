package dto

import "github.com/SscSPs/news_aggregator_app/internal/apperrors"

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Success bool                   `json:"success" example:"false"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func OKWithMessage(message string, data any) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

func Fail(message string, fields ...apperrors.FieldError) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Errors: fields}
}
