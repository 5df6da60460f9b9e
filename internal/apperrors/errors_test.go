package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error wins", apperrors.NewConflictError("email taken", "email"), http.StatusConflict},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token failure", fmt.Errorf("expired: %w", apperrors.ErrInvalidToken), http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestNewConflictError_NamesField(t *testing.T) {
	err := apperrors.NewConflictError("Email address already in use", "email")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	if assert.Len(t, err.Errors, 1) {
		assert.Equal(t, "email", err.Errors[0].Field)
	}
}
