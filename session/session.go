// Package session persists the bearer token and cached user identity across
// runs. It is the single authority for the authenticated/unauthenticated
// state every page-level consumer gates on.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/thrivehealth/thriveGo/models"
	"go.uber.org/zap"
)

// sessionData mirrors the two fixed storage keys the web client kept in
// localStorage.
type sessionData struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// Store is a file-backed session. Zero-value token means unauthenticated.
type Store struct {
	filePath string
	mu       sync.RWMutex
	data     sessionData
}

// Open loads the session file if one exists, creating parent directories for
// a later save. A missing file is a fresh unauthenticated session, not an
// error.
func Open(filePath string) (*Store, error) {
	s := &Store{filePath: filePath}

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// corrupt session file, start over unauthenticated
		logger.Error("Discarding unreadable session file", zap.String("path", filePath), zap.Error(err))
		s.data = sessionData{}
	}
	return s, nil
}

// SetCredentials stores the token and identity of a freshly opened session.
func (s *Store) SetCredentials(token string, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	s.data.User = &user
	s.save()
}

// SetUser refreshes the cached identity without touching the token.
func (s *Store) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = &user
	s.save()
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// User returns the cached identity of the session owner.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.User == nil {
		return models.User{}, false
	}
	return *s.data.User, true
}

// IsAuthenticated reports whether a session token is present. It flips false
// the moment the gateway's 401 trap or an explicit logout purges the store.
func (s *Store) IsAuthenticated() bool {
	return len(s.Token()) > 0
}

// Clear purges both keys and reports whether anything was actually stored.
// Repeated 401s therefore purge exactly once.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Token) == 0 && s.data.User == nil {
		return false
	}
	s.data = sessionData{}
	s.save()
	return true
}

// save is called with the lock held.
func (s *Store) save() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		logger.Error("Failed encoding session", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.filePath, raw, 0600); err != nil {
		logger.Error("Failed writing session file", zap.String("path", s.filePath), zap.Error(err))
	}
}
