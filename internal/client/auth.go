package client

import (
	"context"
	"fmt"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/session"
)

// Auth endpoint paths.
const (
	PathLogin          = "/auth/login"
	PathSignUp         = "/auth/signup"
	PathVerifyOTP      = "/auth/verify-otp"
	PathResendOTP      = "/auth/resend-otp"
	PathForgotPassword = "/auth/forgot-password"
	PathResetPassword  = "/auth/reset-password"
)

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email_address"`
	Password string `json:"password"`
}

// SignUpRequest is the registration form payload.
type SignUpRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email_address"`
	PhoneNumber     string `json:"phone_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// OTPRequest carries the 4-digit code entered on the verification screen.
type OTPRequest struct {
	Email string `json:"email_address"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest carries the new password chosen after OTP verification.
type ResetPasswordRequest struct {
	Email           string `json:"email_address"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_new_password"`
}

// userProfile is the slice of the user object the client keeps after auth.
type userProfile struct {
	Email string `json:"email_address"`
}

// authResponse covers the login and signup response shapes; the backend has
// used both "user" and "userProfile" for the profile object, so both are
// decoded and whichever is populated wins.
type authResponse struct {
	Envelope
	Token       string      `json:"token"`
	User        userProfile `json:"user"`
	UserProfile userProfile `json:"userProfile"`
}

func (r authResponse) email() string {
	if r.UserProfile.Email != "" {
		return r.UserProfile.Email
	}
	return r.User.Email
}

// Login authenticates and persists the returned token and email to the
// session store, so subsequent requests carry the bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (session.Context, error) {
	var resp authResponse
	status, err := c.Post(ctx, PathLogin, req, &resp)
	if err != nil {
		return session.Context{}, fmt.Errorf("client.Client.Login: %w", err)
	}
	if !Accepted(resp.Envelope, status) {
		return session.Context{}, fmt.Errorf("client.Client.Login: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return c.saveSession(resp)
}

// SignUp registers a new account. Like login, a successful response signs the
// user in immediately.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (session.Context, error) {
	var resp authResponse
	status, err := c.Post(ctx, PathSignUp, req, &resp)
	if err != nil {
		return session.Context{}, fmt.Errorf("client.Client.SignUp: %w", err)
	}
	if !Accepted(resp.Envelope, status) {
		return session.Context{}, fmt.Errorf("client.Client.SignUp: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return c.saveSession(resp)
}

// VerifyOTP submits the 4-digit code. The backend's message ("Invalid OTP",
// expiry notices) is surfaced verbatim on failure.
func (c *Client) VerifyOTP(ctx context.Context, req OTPRequest) error {
	var resp Envelope
	status, err := c.Post(ctx, PathVerifyOTP, req, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.VerifyOTP: %w", err)
	}
	if !Accepted(resp, status) {
		msg := resp.Message
		if msg == "" {
			msg = "Invalid OTP"
		}
		return fmt.Errorf("client.Client.VerifyOTP: %w", &APIError{StatusCode: status, Message: msg})
	}
	return nil
}

// ResendOTP asks the backend to send a fresh code to email.
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	var resp Envelope
	status, err := c.Post(ctx, PathResendOTP, map[string]string{"email_address": email}, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.ResendOTP: %w", err)
	}
	if !Accepted(resp, status) {
		return fmt.Errorf("client.Client.ResendOTP: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return nil
}

// ForgotPassword starts the password-reset flow for email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	var resp Envelope
	status, err := c.Post(ctx, PathForgotPassword, map[string]string{"email_address": email}, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.ForgotPassword: %w", err)
	}
	if !Accepted(resp, status) {
		return fmt.Errorf("client.Client.ForgotPassword: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return nil
}

// ResetPassword sets the new password chosen after a verified reset OTP.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	var resp Envelope
	status, err := c.Put(ctx, PathResetPassword, req, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.ResetPassword: %w", err)
	}
	if !Accepted(resp, status) {
		return fmt.Errorf("client.Client.ResetPassword: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return nil
}

// Logout clears the stored session. Purely local; the backend keeps no
// server-side session state for this client.
func (c *Client) Logout() error {
	if c.sessions == nil {
		return nil
	}
	if err := c.sessions.Clear(); err != nil {
		return fmt.Errorf("client.Client.Logout: %w", err)
	}
	return nil
}

// saveSession stores the authenticated session when a store is wired and
// returns the resulting context either way.
func (c *Client) saveSession(resp authResponse) (session.Context, error) {
	sess := session.Context{Token: resp.Token, Email: resp.email()}
	if c.sessions != nil {
		if err := c.sessions.Save(sess); err != nil {
			return sess, fmt.Errorf("client.Client.saveSession: %w", err)
		}
	}
	return sess, nil
}

// messageOr falls back to the generic message when the envelope carried none.
func messageOr(msg string) string {
	if msg == "" {
		return GenericErrorMessage
	}
	return msg
}
