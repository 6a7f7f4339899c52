package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(client *api.Client, logger zerolog.Logger) UserService {
	return &userService{
		client: client,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

// Login exchanges mobile + password for a session. The caller decides
// whether and where to persist it.
func (s *userService) Login(ctx context.Context, mobile, password string) (*model.AuthSession, error) {
	resp, err := s.client.Post(ctx, "/api/users/login", map[string]string{
		"mobile":   mobile,
		"password": password,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var session model.AuthSession
	if err := resp.Decode(&session); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", session.User.ID).Msg("logged in")
	return &session, nil
}

// Register creates an account and returns its session, again leaving
// persistence to the caller.
func (s *userService) Register(ctx context.Context, input model.RegisterInput) (*model.AuthSession, error) {
	resp, err := s.client.Post(ctx, "/api/users/register", input)
	if err != nil {
		s.logger.Warn().Err(err).Msg("registration failed")
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	var session model.AuthSession
	if err := resp.Decode(&session); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", session.User.ID).Msg("registered")
	return &session, nil
}

// Me fetches the profile for the stored token.
func (s *userService) Me(ctx context.Context) (*model.User, error) {
	resp, err := s.client.Get(ctx, "/api/users/me", api.WithAuth())
	if err != nil {
		s.logger.Debug().Err(err).Msg("failed to fetch profile")
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var user model.User
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
