// Package auth persists the signed-in session (token + profile) on disk,
// the client-side storage the API client and flows read from.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// credentials is the on-disk shape: the token and the serialized user,
// exactly the two slots the storefront keeps.
type credentials struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// CredentialStore reads and writes the persisted session. Reads are
// served from memory after the initial load; Save and Clear update both
// memory and disk. Safe for concurrent use.
type CredentialStore struct {
	path   string
	logger zerolog.Logger

	mu    sync.RWMutex
	creds credentials
	set   bool
}

// NewCredentialStore opens the store at path. An empty path selects the
// default location under the user config directory. A missing file is
// not an error; it just means nobody is signed in.
func NewCredentialStore(path string, logger zerolog.Logger) (*CredentialStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		path = filepath.Join(dir, "arogya-storefront", "credentials.json")
	}

	s := &CredentialStore{
		path:   path,
		logger: logger.With().Str("component", "credentials").Logger(),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CredentialStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// A corrupt file degrades to signed-out rather than blocking startup.
		s.logger.Warn().Err(err).Str("path", s.path).Msg("ignoring unreadable credentials file")
		return nil
	}

	s.creds = creds
	s.set = creds.Token != ""
	return nil
}

// Token returns the stored bearer token, or "" when signed out.
func (s *CredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Token
}

// User returns the stored profile, if one is persisted.
func (s *CredentialStore) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.User, s.set
}

// Save persists the session after a successful login or registration.
func (s *CredentialStore) Save(token string, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := credentials{Token: token, User: user}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	s.creds = creds
	s.set = true
	s.logger.Debug().Str("user_id", user.ID).Msg("credentials saved")
	return nil
}

// Clear signs the user out, removing the persisted session.
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	s.creds = credentials{}
	s.set = false
	s.logger.Debug().Msg("credentials cleared")
	return nil
}
