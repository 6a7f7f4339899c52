package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// productsService implements ProductsService.
type productsService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewProductsService creates a new products service.
func NewProductsService(client *api.Client, logger zerolog.Logger) ProductsService {
	return &productsService{
		client: client,
		logger: logger.With().Str("service", "products").Logger(),
	}
}

// GetProducts retrieves the full catalog.
func (s *productsService) GetProducts(ctx context.Context) ([]model.Product, error) {
	resp, err := s.client.Get(ctx, "/api/products")
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch products")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	var products []model.Product
	if err := resp.Decode(&products); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(products)).Msg("fetched products")
	return products, nil
}

// CreateProduct adds a catalog entry (admin path).
func (s *productsService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	resp, err := s.client.Post(ctx, "/api/products", product, api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	var created model.Product
	if err := resp.Decode(&created); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Msg("product created")
	return &created, nil
}
