package client

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport is an http.RoundTripper that writes one structured log
// line per outbound call: method, URL, status, duration. It is the client
// side of the same request log the stub server writes.
type LoggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport wraps base (nil means http.DefaultTransport) with
// request/response logging via logger.
func NewLoggingTransport(base http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingTransport{base: base, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.ErrorContext(req.Context(), "request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	t.logger.InfoContext(req.Context(), "request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
