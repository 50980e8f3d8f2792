package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/salesdash/api/pkg/errors"
	"github.com/salesdash/api/pkg/validator"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func TestWriteJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"id": "p-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestWriteError_AppErrorMessagePassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, apperrors.NotFound("Product"), discardLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", messageOf(t, rec))
}

func TestWriteError_ConflictMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	WriteError(rec, req, apperrors.AlreadyExists("Email already registered"), discardLogger())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", messageOf(t, rec))
}

func TestWriteError_UnknownErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, errors.New("pq: SSL connection has been closed unexpectedly"), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "an internal error occurred", messageOf(t, rec))
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestWriteError_BareSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, apperrors.ErrNotFound, discardLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", messageOf(t, rec))
}

func TestWriteValidationError_JoinsFieldMessages(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	err := validator.Validate(form{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	WriteValidationError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, messageOf(t, rec), "field 'Email' is required")
}
