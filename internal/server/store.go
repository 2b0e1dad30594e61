package server

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

// User is an account record held by the stub backend.
type User struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	City        string
	Country     string
	Address     string
	Verified    bool
}

// SubmittedTrip is a stored trip submission: the flat payload the client
// posted (trip fields plus fingerprint fields) under a server-assigned ID.
type SubmittedTrip struct {
	ID      uuid.UUID
	Payload map[string]any
}

// Store is the stub backend's in-memory state. All methods are safe for
// concurrent use. Nothing survives a restart, which is the point: the real
// persistence authority is the production backend, not this process.
type Store struct {
	mu     sync.RWMutex
	users  map[string]*User
	tokens map[string]string
	trips  []SubmittedTrip
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		users:  map[string]*User{},
		tokens: map[string]string{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SaveUser inserts a new account. Returns domain.ErrValidation when the email
// is already registered.
func (s *Store) SaveUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeEmail(u.Email)
	if _, exists := s.users[key]; exists {
		return domain.ErrValidation
	}
	clone := u
	s.users[key] = &clone
	return nil
}

// GetUser looks up an account by email. Returns domain.ErrNotFound when no
// such account exists.
func (s *Store) GetUser(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return User{}, domain.ErrNotFound
	}
	return *u, nil
}

// SetPassword replaces the password for an existing account.
func (s *Store) SetPassword(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return domain.ErrNotFound
	}
	u.Password = password
	return nil
}

// MarkVerified flags the account as having passed OTP verification.
func (s *Store) MarkVerified(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return domain.ErrNotFound
	}
	u.Verified = true
	return nil
}

// UpdateUser applies per-field changes to an existing account. Only the keys
// present in changes are touched; unknown keys are ignored.
func (s *Store) UpdateUser(email string, changes map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return domain.ErrNotFound
	}
	for key, value := range changes {
		switch key {
		case "first_name":
			u.FirstName = value
		case "last_name":
			u.LastName = value
		case "phone_number":
			u.PhoneNumber = value
		case "city":
			u.City = value
		case "country":
			u.Country = value
		case "address":
			u.Address = value
		}
	}
	return nil
}

// DeleteUser removes an account and revokes every token issued for it.
func (s *Store) DeleteUser(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeEmail(email)
	if _, ok := s.users[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, key)
	for token, owner := range s.tokens {
		if owner == key {
			delete(s.tokens, token)
		}
	}
	return nil
}

// IssueToken mints a bearer token for email and records it, so authenticated
// endpoints can map the token back to its account.
func (s *Store) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.tokens[token] = normalizeEmail(email)
	return token
}

// EmailForToken resolves a bearer token to the account it was issued for.
func (s *Store) EmailForToken(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.tokens[token]
	return email, ok
}

// SaveTrip stores a submitted payload and returns its server-assigned ID.
func (s *Store) SaveTrip(payload map[string]any) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.trips = append(s.trips, SubmittedTrip{ID: id, Payload: payload})
	return id
}

// Trips returns a copy of all stored submissions, oldest first.
func (s *Store) Trips() []SubmittedTrip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SubmittedTrip, len(s.trips))
	copy(out, s.trips)
	return out
}
