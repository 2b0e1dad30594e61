package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/middleware"
)

// submissionHandler mimics the trip submission endpoint: 201 with a JSON
// envelope so the middleware has a realistic status and body size to record.
var submissionHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"success": true, "trip_id": "trip-1"})
})

// TestSlogLogger_logsRequestFields verifies the one-line-per-request log:
// method, path, status, duration, and the ID chi's RequestID put in context.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(submissionHandler)

	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{"trip_title":"Summer Vacation"}`))
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	require.Equal(t, "POST", logEntry["method"])
	require.Equal(t, "/trips", logEntry["path"])
	require.EqualValues(t, http.StatusCreated, logEntry["status"])
	require.Equal(t, "req-42", logEntry["request_id"])
	require.NotNil(t, logEntry["duration_ms"])
}

// TestSlogLogger_recordsErrorStatus checks that a validation failure's 422
// lands in the log line, not the 200 the recorder starts with.
func TestSlogLogger_recordsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Trip title required", http.StatusUnprocessableEntity)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	require.EqualValues(t, http.StatusUnprocessableEntity, logEntry["status"])
}
