package checkout

import (
	"context"

	"arogya-storefront/internal/model"
	"arogya-storefront/internal/service"

	"github.com/rs/zerolog"
)

// CredentialSink is where a successful registration's session gets
// persisted. The flow is the caller that owns this side effect; the user
// service itself never writes storage.
type CredentialSink interface {
	Token() string
	Save(token string, user model.User) error
}

// CartFlow wraps the cart service with the storefront's flow rules:
// adding requires a signed-in session, an unauthenticated add branches
// into registration and replays the add exactly once, and quantity edits
// are absolute upserts with zero routing to removal.
type CartFlow struct {
	users  service.UserService
	cart   service.CartService
	creds  CredentialSink
	logger zerolog.Logger
}

// NewCartFlow creates the flow.
func NewCartFlow(users service.UserService, cart service.CartService, creds CredentialSink, logger zerolog.Logger) *CartFlow {
	return &CartFlow{
		users:  users,
		cart:   cart,
		creds:  creds,
		logger: logger.With().Str("component", "cart-flow").Logger(),
	}
}

// AddToCart sets the quantity for a product. Without a stored token it
// returns model.ErrAuthRequired so the caller can open the registration
// step and come back through RegisterAndAddToCart.
func (f *CartFlow) AddToCart(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	if f.creds.Token() == "" {
		f.logger.Debug().Str("product_id", productID).Msg("add-to-cart attempted while signed out")
		return nil, model.ErrAuthRequired
	}
	return f.cart.AddToCart(ctx, productID, quantity)
}

// RegisterAndAddToCart is the signed-out branch: register, persist the
// session, then replay the original add exactly once. A failed replay is
// returned as-is; there is no second retry.
func (f *CartFlow) RegisterAndAddToCart(ctx context.Context, input model.RegisterInput, productID string, quantity int) (*model.AuthSession, *model.Cart, error) {
	session, err := f.users.Register(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	// The replayed call reads the token from storage, so this save must
	// land before the replay.
	if err := f.creds.Save(session.Token, session.User); err != nil {
		return session, nil, err
	}

	f.logger.Info().Str("user_id", session.User.ID).Msg("registered during add-to-cart, replaying add")

	cart, err := f.cart.AddToCart(ctx, productID, quantity)
	if err != nil {
		return session, nil, err
	}
	return session, cart, nil
}

// ChangeQuantity applies a +/- delta to a line by re-sending the new
// absolute quantity to the add endpoint. A delta that lands at or below
// zero removes the line instead of leaving a zero-quantity record.
func (f *CartFlow) ChangeQuantity(ctx context.Context, cart *model.Cart, productID string, delta int) (*model.Cart, error) {
	item, ok := cart.Item(productID)
	if !ok {
		return nil, model.ErrNotFound
	}

	newQuantity := item.Quantity + delta
	if newQuantity <= 0 {
		if err := f.cart.RemoveFromCart(ctx, cart.ID, productID); err != nil {
			return nil, err
		}
		return f.cart.GetCart(ctx)
	}

	return f.cart.AddToCart(ctx, productID, newQuantity)
}
