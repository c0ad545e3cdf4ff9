package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyMiddleware_MissingKey(t *testing.T) {
	server := newTestServer(sampleStub(), ServerConfig{APIKey: "secret"})
	router := server.Routes()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestAPIKeyMiddleware_WrongKey(t *testing.T) {
	server := newTestServer(sampleStub(), ServerConfig{APIKey: "secret"})
	router := server.Routes()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	server := newTestServer(sampleStub(), ServerConfig{APIKey: "secret"})
	router := server.Routes()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddleware_DisabledWithoutKey(t *testing.T) {
	server := newTestServer(sampleStub(), ServerConfig{})
	router := server.Routes()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointUnprotected(t *testing.T) {
	server := newTestServer(sampleStub(), ServerConfig{APIKey: "secret"})
	router := server.Routes()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mocat_")
}
