// Package server implements the stub backend: an HTTP server with the same
// surface the mobile client talks to in production (trip submission, auth,
// catalog), backed by in-memory storage. It exists so the client, the flow,
// and integration tests can run end to end without the real backend.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// envelope is the response wrapper every endpoint returns. Success and Status
// are both set because clients have historically checked either.
type envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// Server holds the stub backend's handlers and their shared state.
type Server struct {
	store  *Store
	logger *slog.Logger
}

// New constructs a Server over the given store.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, logger: logger}
}

// writeJSON writes v with the given status code. Encoding failures are logged,
// not surfaced; the status line has already gone out.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// fail writes an error envelope with the given status and message.
func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, envelope{Success: false, Status: status, Message: message})
}

// decode reads a JSON body into v, returning a client-presentable error.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Healthz reports liveness. Mounted at GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "ok"})
}
