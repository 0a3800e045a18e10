// Package session is the single source of truth for "who is logged in".
// The session is persisted as exactly two entries in the state directory:
// the raw auth token and the serialized user. Both are cleared together on
// logout. A persisted token is only trusted while its embedded expiry is in
// the future; the signature itself is the server's concern.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobdeck/jobdeck/pkg/models"
)

const (
	tokenFile = "auth_token"
	userFile  = "auth_user.json"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Store holds the current session state. It is initialized once at startup
// from persisted storage and torn down on logout.
type Store struct {
	dir string

	mu    sync.RWMutex
	token string
	user  *models.User

	now func() time.Time
}

// NewStore seeds a Store from the state directory. A token with an expired
// or undecodable exp claim is treated as absent, and stale entries are
// removed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	s := &Store{dir: dir, now: time.Now}

	raw, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}

	token := string(raw)
	if !s.tokenValid(token) {
		s.removeFiles()
		return s, nil
	}

	userRaw, err := os.ReadFile(filepath.Join(dir, userFile))
	if err != nil {
		// Token without a user is useless; drop both.
		s.removeFiles()
		return s, nil
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		s.removeFiles()
		return s, nil
	}

	s.token = token
	s.user = &user
	return s, nil
}

// Set persists a new session and publishes it as current state.
func (s *Store) Set(token string, user *models.User) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), userRaw, 0600); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// Clear destroys the session. No server-side revocation call is made; the
// token is a stateless JWT.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.removeFiles()
}

// Current returns the cached user, or nil when logged out.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the raw bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a session with an unexpired token exists.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	return token != "" && s.tokenValid(token)
}

// HasRole reports whether the cached user carries the given role. Pure over
// cached state; no network call.
func (s *Store) HasRole(role string) bool {
	user := s.Current()
	return user != nil && user.Role == role
}

// HasAnyRole reports whether the cached user carries any of the given roles.
func (s *Store) HasAnyRole(roles ...string) bool {
	user := s.Current()
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// UpdateEmail rewrites the cached user's email after the server accepted the
// change. The stored user entry is refreshed in place.
func (s *Store) UpdateEmail(newEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ErrNotAuthenticated
	}
	updated := *s.user
	updated.Email = newEmail

	raw, err := json.Marshal(&updated)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), raw, 0600); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	s.user = &updated
	return nil
}

// tokenValid decodes the token without verifying the signature and checks
// the exp claim against the current time.
func (s *Store) tokenValid(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(s.now())
}

func (s *Store) removeFiles() {
	os.Remove(filepath.Join(s.dir, tokenFile))
	os.Remove(filepath.Join(s.dir, userFile))
}
