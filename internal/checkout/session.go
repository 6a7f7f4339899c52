// Package checkout orchestrates the cart-to-order flow: auth-gated
// add-to-cart with a one-shot registration replay, quantity edits as
// absolute upserts, and order placement driven by an explicit state
// machine so a downstream failure can never masquerade as success.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"arogya-storefront/internal/model"
	"arogya-storefront/internal/service"
	"arogya-storefront/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Shipping rule: orders at or above the threshold ship free.
const (
	FreeShippingThreshold = 500.0
	StandardShippingFee   = 50.0
)

// State is the checkout session's position in the flow.
type State int

const (
	StateBrowsing State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Delivery is what the customer fills in at checkout.
type Delivery struct {
	PhoneNumber string
	Address     model.Address
	Notes       string
}

// Result is a successfully placed order plus the WhatsApp hand-off link
// for notifying the clinic.
type Result struct {
	Order        *model.Order
	OrderNumber  string
	WhatsAppLink string
}

// Session owns one checkout attempt. It is the single source of truth
// for the submission state: at most one PlaceOrder can be in flight, and
// the state after a call always reflects what actually happened,
// including the order-created-but-cart-not-cleared case.
type Session struct {
	id       uuid.UUID
	cart     service.CartService
	orders   service.OrderService
	waNumber string
	logger   zerolog.Logger

	mu         sync.Mutex
	state      State
	failReason string
	order      *model.Order
}

// NewSession starts a checkout session in the Browsing state.
func NewSession(cart service.CartService, orders service.OrderService, waNumber string, logger zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		cart:     cart,
		orders:   orders,
		waNumber: waNumber,
		logger:   logger.With().Str("component", "checkout").Str("session_id", id.String()).Logger(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current position in the flow.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FailureReason returns why the session is Failed, or "".
func (s *Session) FailureReason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failReason
}

// Order returns the created order, if one exists. It is set on success
// and also when the order was created but the cart could not be cleared.
func (s *Session) Order() *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// ShippingFeeFor returns the shipping fee for a subtotal.
func ShippingFeeFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

// TotalFor returns subtotal plus shipping, exactly.
func TotalFor(subtotal float64) float64 {
	return subtotal + ShippingFeeFor(subtotal)
}

// AmountToFreeShipping returns how much more the customer must add to
// ship free, or 0 if they already qualify.
func AmountToFreeShipping(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FreeShippingThreshold - subtotal
}

// ValidateDelivery checks the form before any network call is made.
func ValidateDelivery(d Delivery, cart *model.Cart) error {
	if countDigits(d.PhoneNumber) < 10 {
		return model.ErrInvalidPhone
	}
	if strings.TrimSpace(d.Address.City) == "" {
		return model.ErrMissingCity
	}
	if countDigits(d.Address.Pincode) < 5 {
		return model.ErrInvalidPincode
	}
	if strings.TrimSpace(d.Address.StreetAddress) == "" {
		return model.ErrMissingStreet
	}
	if cart == nil || len(cart.Items) == 0 {
		return model.ErrEmptyCart
	}
	return nil
}

// PlaceOrder submits the cart as an order. The cart snapshot (product
// id, quantity, name, price at order time) plus the delivery details and
// the computed total go to the orders endpoint; on success the server
// cart is cleared.
//
// A validation failure leaves the session in Browsing and makes no
// network call. A create failure leaves the cart untouched. A clear
// failure after a successful create is reported as a failure carrying
// the created order, never as success.
func (s *Session) PlaceOrder(ctx context.Context, user model.User, cart *model.Cart, delivery Delivery) (*Result, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, model.ErrSubmitInFlight
	}
	if s.state == StateSucceeded {
		s.mu.Unlock()
		return nil, model.NewDomainError(model.ErrCodeSubmitInFlight, "This checkout has already completed")
	}
	if err := ValidateDelivery(delivery, cart); err != nil {
		s.state = StateBrowsing
		s.mu.Unlock()
		s.logger.Debug().Err(err).Msg("checkout blocked by validation")
		return nil, err
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	subtotal := cart.Subtotal()
	total := TotalFor(subtotal)

	products := make([]model.OrderProduct, len(cart.Items))
	for i, item := range cart.Items {
		products[i] = model.OrderProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
		}
	}

	order, err := s.orders.CreateOrder(ctx, model.OrderInput{
		UserID:        user.ID,
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPending,
		Address:       delivery.Address,
		PhoneNumber:   delivery.PhoneNumber,
		Amount:        total,
		Products:      products,
	})
	if err != nil {
		s.fail("failed to create order", nil)
		return nil, err
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		// The order exists but the cart does not reflect it. Surfacing
		// success here would leave the customer one click away from
		// ordering everything twice.
		s.fail("order created but cart could not be cleared", order)
		return nil, fmt.Errorf("order %s created but cart could not be cleared: %w", order.ID, err)
	}

	s.mu.Lock()
	s.state = StateSucceeded
	s.order = order
	s.mu.Unlock()

	orderNumber := fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
	link := whatsapp.OrderNotification{
		OrderNumber: orderNumber,
		Customer:    user.Name,
		Phone:       delivery.PhoneNumber,
		Email:       user.Email,
		Address:     delivery.Address,
		Items:       cart.Items,
		Total:       total,
		Payment:     "Cash on Delivery",
		Notes:       delivery.Notes,
	}.Link(s.waNumber)

	s.logger.Info().
		Str("order_id", order.ID).
		Str("order_number", orderNumber).
		Float64("amount", total).
		Msg("order placed")

	return &Result{Order: order, OrderNumber: orderNumber, WhatsAppLink: link}, nil
}

func (s *Session) fail(reason string, order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.failReason = reason
	if order != nil {
		s.order = order
	}
	s.logger.Warn().Str("reason", reason).Msg("checkout failed")
}

func countDigits(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
