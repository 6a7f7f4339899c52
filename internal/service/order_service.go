package service

import (
	"context"
	"fmt"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	client *api.Client
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(client *api.Client, logger zerolog.Logger) OrderService {
	return &orderService{
		client: client,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// GetOrders lists the user's orders.
func (s *orderService) GetOrders(ctx context.Context) ([]model.Order, error) {
	resp, err := s.client.Get(ctx, "/api/orders", api.WithAuth())
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch orders")
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	var orders []model.Order
	if err := resp.Decode(&orders); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(orders)).Msg("fetched orders")
	return orders, nil
}

// CreateOrder submits a checkout snapshot as a new order. The line items
// carry name and price at order time; later catalog changes do not touch
// a placed order.
func (s *orderService) CreateOrder(ctx context.Context, input model.OrderInput) (*model.Order, error) {
	resp, err := s.client.Post(ctx, "/api/orders", input, api.WithAuth(), api.WithNoCache())
	if err != nil {
		s.logger.Warn().Err(err).Float64("amount", input.Amount).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	var order model.Order
	if err := resp.Decode(&order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(input.Products)).
		Float64("amount", input.Amount).
		Msg("order created")
	return &order, nil
}
