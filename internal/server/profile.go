package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// profileEnvelope nests the profile under "user", the shape the client
// decodes.
type profileEnvelope struct {
	envelope
	User client.Profile `json:"user"`
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// GetProfile handles GET /profile/{email}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	user, err := s.store.GetUser(email)
	if err != nil {
		s.fail(w, http.StatusNotFound, "No account with that email")
		return
	}
	s.writeJSON(w, http.StatusOK, profileEnvelope{
		envelope: envelope{Success: true, Status: http.StatusOK},
		User: client.Profile{
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			City:        user.City,
			Country:     user.Country,
			Address:     user.Address,
		},
	})
}

// UpdateProfile handles PUT /profile/{email}. Only the fields present in the
// body change; each present field is validated with the edit-form rules.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	var changes map[string]string
	if err := decode(r, &changes); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if len(changes) == 0 {
		s.fail(w, http.StatusUnprocessableEntity, "Please update at least one field")
		return
	}

	checks := map[string]func(string) string{
		"first_name":   func(v string) string { return validate.ProfileText(v, "Invalid first name") },
		"last_name":    func(v string) string { return validate.ProfileText(v, "Invalid last name") },
		"phone_number": validate.LocalPhone,
		"city":         func(v string) string { return validate.ProfileText(v, "Invalid city") },
		"country":      func(v string) string { return validate.ProfileText(v, "Invalid country") },
		"address":      validate.Address,
	}
	for key, value := range changes {
		check, ok := checks[key]
		if !ok {
			continue
		}
		if msg := check(value); msg != "" {
			s.fail(w, http.StatusUnprocessableEntity, msg)
			return
		}
	}

	if err := s.store.UpdateUser(email, changes); err != nil {
		s.fail(w, http.StatusNotFound, "No account with that email")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "Profile Updated Successfully"})
}

// DeleteProfile handles DELETE /profile. The account comes from the bearer
// token, never from the body, so a client can only delete itself.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		s.fail(w, http.StatusUnauthorized, "Please logged-in account")
		return
	}
	email, ok := s.store.EmailForToken(token)
	if !ok {
		s.fail(w, http.StatusUnauthorized, "Please logged-in account")
		return
	}
	if err := s.store.DeleteUser(email); err != nil {
		s.fail(w, http.StatusNotFound, "No account with that email")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Status: http.StatusOK, Message: "Account deleted"})
}
