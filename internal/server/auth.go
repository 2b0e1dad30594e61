package server

import (
	"errors"
	"net/http"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// StubOTP is the code the stub backend accepts for every verification. Real
// OTP generation lives on the production backend; tests and dev just use
// this fixed code.
const StubOTP = "1234"

type userBody struct {
	Email string `json:"email_address"`
}

type authEnvelope struct {
	envelope
	Token       string    `json:"token,omitempty"`
	User        *userBody `json:"user,omitempty"`
	UserProfile *userBody `json:"userProfile,omitempty"`
}

// SignUp handles POST /auth/signup.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Email           string `json:"email_address"`
		PhoneNumber     string `json:"phone_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if msg := validate.Email(req.Email); msg != "" {
		s.fail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if msg := validate.Password(req.Password); msg != "" {
		s.fail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if req.Password != req.ConfirmPassword {
		s.fail(w, http.StatusUnprocessableEntity, "Passwords do not match")
		return
	}

	err := s.store.SaveUser(User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		s.fail(w, http.StatusConflict, "Email already registered")
		return
	}

	s.writeJSON(w, http.StatusCreated, authEnvelope{
		envelope: envelope{Success: true, Status: http.StatusCreated, Message: "Account created"},
		Token:    s.store.IssueToken(req.Email),
		User:     &userBody{Email: req.Email},
	})
}

// Login handles POST /auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email_address"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	user, err := s.store.GetUser(req.Email)
	if err != nil || user.Password != req.Password {
		s.fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.writeJSON(w, http.StatusOK, authEnvelope{
		envelope:    envelope{Success: true, Status: http.StatusOK, Message: "Logged in"},
		Token:       s.store.IssueToken(user.Email),
		UserProfile: &userBody{Email: user.Email},
	})
}

// VerifyOTP handles POST /auth/verify-otp. The stub accepts only StubOTP.
func (s *Server) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email_address"`
		OTP   string `json:"otp"`
	}
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if req.OTP != StubOTP {
		s.fail(w, http.StatusUnprocessableEntity, "Invalid OTP")
		return
	}
	if err := s.store.MarkVerified(req.Email); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.fail(w, http.StatusInternalServerError, "verification failed")
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "Account verified"})
}

// ResendOTP handles POST /auth/resend-otp. Always succeeds; the stub has no
// mailer.
func (s *Server) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req userBody
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "OTP resent successfully"})
}

// ForgotPassword handles POST /auth/forgot-password. The account must exist;
// beyond that the stub just pretends to have sent a code.
func (s *Server) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req userBody
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if _, err := s.store.GetUser(req.Email); err != nil {
		s.fail(w, http.StatusNotFound, "No account with that email")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "Reset code sent"})
}

// ResetPassword handles PUT /auth/reset-password.
func (s *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email_address"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_new_password"`
	}
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if msg := validate.Password(req.NewPassword); msg != "" {
		s.fail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		s.fail(w, http.StatusUnprocessableEntity, "Passwords do not match")
		return
	}
	if err := s.store.SetPassword(req.Email, req.NewPassword); err != nil {
		s.fail(w, http.StatusNotFound, "No account with that email")
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "Password changed"})
}
