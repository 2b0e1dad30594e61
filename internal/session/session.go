// Package session models the signed-in user's ambient state (bearer token and
// email) as an explicit value with a load/save/clear lifecycle, instead of
// scattered key/value lookups. Components that need the session receive a
// Context; nothing reads storage behind the caller's back.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Context is the session snapshot passed into components that need it
// (the REST client, primarily). Zero value means "not signed in".
type Context struct {
	Token string `json:"token"`
	Email string `json:"email_address"`
}

// Active reports whether a token is present.
func (c Context) Active() bool {
	return c.Token != ""
}

// Store persists a session Context between runs.
type Store interface {
	// Load returns the stored session, or a zero Context when none is stored.
	Load() (Context, error)
	// Save replaces the stored session.
	Save(Context) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear() error
}

// FileStore keeps the session as a small JSON file, the desktop analog of the
// phone's key/value storage. Safe for concurrent use within one process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore persisting to path. Parent directories are
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the session file. A missing file yields a zero Context.
func (s *FileStore) Load() (Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Context{}, nil
	}
	if err != nil {
		return Context{}, fmt.Errorf("session.FileStore.Load: %w", err)
	}
	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return Context{}, fmt.Errorf("session.FileStore.Load: %w", err)
	}
	return ctx, nil
}

// Save writes the session file with owner-only permissions; it holds a token.
func (s *FileStore) Save(ctx Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session.FileStore.Save: %w", err)
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("session.FileStore.Save: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session.FileStore.Save: %w", err)
	}
	return nil
}

// Clear removes the session file if present.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session.FileStore.Clear: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	mu  sync.Mutex
	ctx Context
	set bool
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the stored session, or a zero Context when nothing was saved.
func (s *MemStore) Load() (Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return Context{}, nil
	}
	return s.ctx, nil
}

// Save replaces the stored session.
func (s *MemStore) Save(ctx Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
	s.set = true
	return nil
}

// Clear drops the stored session.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = Context{}
	s.set = false
	return nil
}

// compile-time checks
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemStore)(nil)
)
