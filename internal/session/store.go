// Package session is the single source of truth for "is a user logged in,
// and with which roles". State lives in memory behind a narrow query surface
// and is mirrored to two fixed files in the state directory, the durable
// analog of the browser storage keys the admin SPA used.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
)

const (
	tokenFile = "auth_token"
	userFile  = "auth_user.json"
)

// Store holds the bearer token and user profile for the current session.
// Single-writer: Login and Logout are the only mutation entry points.
type Store struct {
	mu    sync.RWMutex
	dir   string
	token string
	user  *models.AuthenticatedUser
}

// NewStore creates a store persisting under dir. Call Restore before any
// role-gated work so a previous session is visible from the start.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Restore loads any previously persisted session. Missing or malformed state
// is treated as "no session"; it never fails the application.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return
	}
	token := string(raw)
	if token == "" {
		return
	}

	userRaw, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return
	}
	var user models.AuthenticatedUser
	if err := json.Unmarshal(userRaw, &user); err != nil {
		logger.Warn().Err(err).Msg("stored user profile is malformed, starting without a session")
		return
	}

	s.token = token
	s.user = normalize(user)
}

// Login records a new session in memory and mirrors it to disk. In-memory
// state is updated first: after Login returns, IsAuthenticated is true even
// if the durable write failed (the error reports that separately).
func (s *Store) Login(token string, user models.AuthenticatedUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = normalize(user)

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	raw, err := json.Marshal(s.user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), raw, 0o600)
}

// Logout clears memory and removes both state files. Idempotent.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// IsAuthenticated reports whether a session is active
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// HasRole reports whether the current user carries the given role. Always
// false when logged out.
func (s *Store) HasRole(role enums.RoleType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.user == nil {
		return false
	}
	return s.user.HasRole(role)
}

// Current returns a copy of the current user profile
func (s *Store) Current() (models.AuthenticatedUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.AuthenticatedUser{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, or "" when logged out. Implements
// gateway.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// normalize guarantees the roles slice is never nil
func normalize(user models.AuthenticatedUser) *models.AuthenticatedUser {
	if user.Roles == nil {
		user.Roles = []enums.RoleType{}
	}
	return &user
}
