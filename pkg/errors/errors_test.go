package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusAndSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		status   int
		sentinel error
	}{
		{"not found", NotFound("Product"), http.StatusNotFound, ErrNotFound},
		{"conflict", AlreadyExists("Email already registered"), http.StatusConflict, ErrAlreadyExists},
		{"invalid input", InvalidInput("price is required"), http.StatusBadRequest, ErrInvalidInput},
		{"unauthorized", Unauthorized("Invalid credentials"), http.StatusUnauthorized, ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Product not found", NotFound("Product").Message)
	assert.Equal(t, "Contact not found", NotFound("Contact").Message)
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "an internal error occurred", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesClassification(t *testing.T) {
	wrapped := Wrap(NotFound("Product"), "load product")

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "Product not found", appErr.Message)
}

func TestHTTPStatus_BareSentinelsAndUnknown(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrAlreadyExists))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything else")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("wrapped: %w", ErrInternal)))
}
