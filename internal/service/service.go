// Package service holds one client per API resource. Each service is a
// fixed menu of REST operations; inputs are plain structs, outputs are
// (value, error) pairs, and no service performs storage or navigation
// side effects; callers own those.
package service

import (
	"context"

	"arogya-storefront/internal/model"
)

// UserService defines the authentication and profile operations.
//
// Login and Register return the session; persisting it is solely the
// caller's responsibility.
type UserService interface {
	// Login exchanges mobile + password for a session.
	Login(ctx context.Context, mobile, password string) (*model.AuthSession, error)

	// Register creates an account and returns its session.
	Register(ctx context.Context, input model.RegisterInput) (*model.AuthSession, error)

	// Me fetches the current profile using the stored token.
	Me(ctx context.Context) (*model.User, error)
}

// ProductsService defines catalog operations.
type ProductsService interface {
	// GetProducts retrieves the full catalog.
	GetProducts(ctx context.Context) ([]model.Product, error)

	// CreateProduct adds a catalog entry (admin path).
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
}

// CartService defines operations on the signed-in user's cart.
type CartService interface {
	// GetCart retrieves the current cart.
	GetCart(ctx context.Context) (*model.Cart, error)

	// AddToCart sets the quantity for a product. The endpoint is an
	// upsert: sending quantity q makes the line's quantity exactly q,
	// it does not increment.
	AddToCart(ctx context.Context, productID string, quantity int) (*model.Cart, error)

	// RemoveFromCart removes a line item, keyed by cart and product id.
	RemoveFromCart(ctx context.Context, cartID, productID string) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) error
}

// OrderService defines order operations.
type OrderService interface {
	// GetOrders lists the user's orders.
	GetOrders(ctx context.Context) ([]model.Order, error)

	// CreateOrder submits a checkout snapshot as a new order.
	CreateOrder(ctx context.Context, input model.OrderInput) (*model.Order, error)
}

// BlogService defines blog read and admin write operations.
type BlogService interface {
	GetBlogs(ctx context.Context) ([]model.Blog, error)
	GetBlogByID(ctx context.Context, id string) (*model.Blog, error)
	CreateBlog(ctx context.Context, input model.BlogInput) (*model.Blog, error)
	UpdateBlog(ctx context.Context, id string, input model.BlogInput) (*model.Blog, error)
}

// TestimonialService defines testimonial operations.
type TestimonialService interface {
	GetTestimonials(ctx context.Context) ([]model.CustomerRating, error)
	CreateRating(ctx context.Context, rating model.CustomerRating) error
}
