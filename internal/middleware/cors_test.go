package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/middleware"
)

// devOrigin is the local web build's dev server, the default allowed origin.
const devOrigin = "http://localhost:5173"

// catalogHandler answers like GET /catalog/packages: 200 with a JSON page.
var catalogHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
})

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(catalogHandler)

	req := httptest.NewRequest(http.MethodGet, "/catalog/packages?page=1&limit=20", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// A profile edit is a cross-origin PUT with a JSON body, so the browser
// preflights it before sending the real request.
func TestCORSHandler_OPTIONS_PreflightForProfileEdit(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(catalogHandler)

	req := httptest.NewRequest(http.MethodOptions, "/profile/sara@example.com", nil)
	req.Header.Set("Origin", devOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	// Browsers lowercase these per the Fetch spec; rs/cors compares verbatim
	// against its lowercased allow list.
	req.Header.Set("Access-Control-Request-Headers", "content-type,authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// rs/cors answers preflights with 204.
	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(catalogHandler)

	req := httptest.NewRequest(http.MethodGet, "/catalog/packages", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// The response itself still goes out; the missing header is what makes
	// the browser block it.
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
