package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// cartService implements CartService. Every call is authenticated; the
// cart is owned by the signed-in user server-side.
type cartService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(client *api.Client, logger zerolog.Logger) CartService {
	return &cartService{
		client: client,
		logger: logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart retrieves the current cart.
func (s *cartService) GetCart(ctx context.Context) (*model.Cart, error) {
	resp, err := s.client.Get(ctx, "/api/cart", api.WithAuth())
	if err != nil {
		s.logger.Debug().Err(err).Msg("failed to fetch cart")
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	var cart model.Cart
	if err := resp.Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart sets the quantity for a product (upsert, not increment).
// Cache-busting is required here so a re-fetch right after the mutation
// sees the new quantity.
func (s *cartService) AddToCart(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	resp, err := s.client.Post(ctx, "/api/cart/add-to-cart", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}, api.WithAuth(), api.WithNoCache())
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID).Int("quantity", quantity).Msg("failed to add to cart")
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	var cart model.Cart
	if err := resp.Decode(&cart); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("product_id", productID).Int("quantity", quantity).Msg("cart updated")
	return &cart, nil
}

// RemoveFromCart removes a line item, keyed by cart id and product id.
func (s *cartService) RemoveFromCart(ctx context.Context, cartID, productID string) error {
	_, err := s.client.Patch(ctx, "/api/cart/remove/"+cartID, map[string]string{
		"productId": productID,
	}, api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID).Str("product_id", productID).Msg("failed to remove from cart")
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	s.logger.Debug().Str("product_id", productID).Msg("item removed from cart")
	return nil
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context) error {
	_, err := s.client.Delete(ctx, "/api/cart", api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Debug().Msg("cart cleared")
	return nil
}
