package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/middleware"
)

// RouterConfig carries the router-level knobs from config.
type RouterConfig struct {
	CORSOrigins []string
	MaxBodySize int64
}

// NewRouter wires the stub server's routes and middleware stack.
// Middleware order: RequestID → RealIP → SlogLogger → Recoverer → CORS →
// MaxBodySize. RequestID first so the logger can include it; Recoverer turns
// handler panics into 500s instead of killing the process.
func NewRouter(s *Server, logger *slog.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodySize))

	r.Get("/healthz", s.Healthz)

	r.Post(client.PathTrips, s.CreateTrip)
	r.Get(client.PathPackages, s.ListPackages)

	r.Get(client.PathProfile+"/{email}", s.GetProfile)
	r.Put(client.PathProfile+"/{email}", s.UpdateProfile)
	r.Delete(client.PathProfile, s.DeleteProfile)

	r.Post(client.PathSignUp, s.SignUp)
	r.Post(client.PathLogin, s.Login)
	r.Post(client.PathVerifyOTP, s.VerifyOTP)
	r.Post(client.PathResendOTP, s.ResendOTP)
	r.Post(client.PathForgotPassword, s.ForgotPassword)
	r.Put(client.PathResetPassword, s.ResetPassword)

	return r
}
