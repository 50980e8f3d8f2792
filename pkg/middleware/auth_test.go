package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestHandler(verify TokenVerifier) (http.Handler, *bool) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(UserIDFromContext(r.Context()) + "|" + EmailFromContext(r.Context())))
	})
	return Auth(verify)(next), &called
}

func decodeAuthMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, called := authTestHandler(func(token string) (*Claims, error) {
		t.Fatal("verifier must not run without a header")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing token", decodeAuthMessage(t, rec))
	assert.False(t, *called)
}

func TestAuth_NonBearerScheme(t *testing.T) {
	handler, called := authTestHandler(func(token string) (*Claims, error) {
		t.Fatal("verifier must not run for a non-bearer scheme")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing token", decodeAuthMessage(t, rec))
	assert.False(t, *called)
}

func TestAuth_VerifierRejects(t *testing.T) {
	handler, called := authTestHandler(func(token string) (*Claims, error) {
		return nil, errors.New("signature mismatch")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", decodeAuthMessage(t, rec))
	assert.False(t, *called)
}

func TestAuth_ValidToken_InjectsClaims(t *testing.T) {
	handler, called := authTestHandler(func(token string) (*Claims, error) {
		assert.Equal(t, "good-token", token)
		return &Claims{UserID: "u-1", Email: "alice@example.com"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Equal(t, "u-1|alice@example.com", rec.Body.String())
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler, called := authTestHandler(func(token string) (*Claims, error) {
		return &Claims{UserID: "u-1"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
