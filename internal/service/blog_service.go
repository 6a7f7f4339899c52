package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// blogService implements BlogService.
type blogService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(client *api.Client, logger zerolog.Logger) BlogService {
	return &blogService{
		client: client,
		logger: logger.With().Str("service", "blog").Logger(),
	}
}

func (s *blogService) GetBlogs(ctx context.Context) ([]model.Blog, error) {
	resp, err := s.client.Get(ctx, "/api/blogs")
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch blogs")
		return nil, fmt.Errorf("failed to fetch blogs: %w", err)
	}

	var blogs []model.Blog
	if err := resp.Decode(&blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *blogService) GetBlogByID(ctx context.Context, id string) (*model.Blog, error) {
	resp, err := s.client.Get(ctx, "/api/blogs/"+id)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		s.logger.Warn().Err(err).Str("blog_id", id).Msg("failed to fetch blog")
		return nil, fmt.Errorf("failed to fetch blog: %w", err)
	}

	var blog model.Blog
	if err := resp.Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *blogService) CreateBlog(ctx context.Context, input model.BlogInput) (*model.Blog, error) {
	resp, err := s.client.Post(ctx, "/api/blogs", input, api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Str("title", input.Title).Msg("failed to create blog")
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	var blog model.Blog
	if err := resp.Decode(&blog); err != nil {
		return nil, err
	}

	s.logger.Info().Str("blog_id", blog.ID).Msg("blog created")
	return &blog, nil
}

func (s *blogService) UpdateBlog(ctx context.Context, id string, input model.BlogInput) (*model.Blog, error) {
	resp, err := s.client.Patch(ctx, "/api/blogs/"+id, input, api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Str("blog_id", id).Msg("failed to update blog")
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	var blog model.Blog
	if err := resp.Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}
