// Package store holds the in-memory state cells derived from service
// calls. Each cell has a single writer and explicit refresh triggers;
// values are replaced wholesale, never merged.
package store

import (
	"context"
	"sync"

	"arogya-storefront/internal/model"
	"arogya-storefront/internal/service"

	"github.com/rs/zerolog"
)

// UserStore caches the signed-in user's profile. Load is the manual
// refresh trigger; Set and Clear cover login and logout. A fetch failure
// degrades to an absent user rather than an error state.
type UserStore struct {
	users  service.UserService
	logger zerolog.Logger

	mu         sync.Mutex
	user       *model.User
	loading    bool
	generation uint64
}

// NewUserStore creates the user cell. Call Load to populate it.
func NewUserStore(users service.UserService, logger zerolog.Logger) *UserStore {
	return &UserStore{
		users:  users,
		logger: logger.With().Str("store", "user").Logger(),
	}
}

// Load re-fetches the profile. Concurrent Loads are allowed; a result
// from a Load that was superseded by a newer one is dropped instead of
// overwriting fresher state.
func (s *UserStore) Load(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.loading = true
	s.mu.Unlock()

	user, err := s.users.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.logger.Debug().Msg("dropping stale profile fetch")
		return
	}
	s.loading = false

	if err != nil {
		s.logger.Debug().Err(err).Msg("profile fetch failed, treating as signed out")
		s.user = nil
		return
	}
	s.user = user
}

// Current returns the cached user, if one is signed in.
func (s *UserStore) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Loading reports whether a fetch is outstanding.
func (s *UserStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Set replaces the cached user, used right after login or registration
// so descendants see the profile without waiting for a re-fetch.
func (s *UserStore) Set(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++ // any in-flight fetch is now stale
	s.user = &user
	s.loading = false
}

// Clear empties the cell on logout.
func (s *UserStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.user = nil
	s.loading = false
}
