package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// testimonialService implements TestimonialService.
type testimonialService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(client *api.Client, logger zerolog.Logger) TestimonialService {
	return &testimonialService{
		client: client,
		logger: logger.With().Str("service", "testimonials").Logger(),
	}
}

func (s *testimonialService) GetTestimonials(ctx context.Context) ([]model.CustomerRating, error) {
	resp, err := s.client.Get(ctx, "/api/ratings")
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch testimonials")
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	var ratings []model.CustomerRating
	if err := resp.Decode(&ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// CreateRating submits a new testimonial (admin-side path).
func (s *testimonialService) CreateRating(ctx context.Context, rating model.CustomerRating) error {
	_, err := s.client.Post(ctx, "/api/ratings", rating, api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Str("customer", rating.CustomerName).Msg("failed to create rating")
		return fmt.Errorf("failed to create rating: %w", err)
	}

	s.logger.Info().Str("treatment", rating.Treatment).Msg("rating created")
	return nil
}
