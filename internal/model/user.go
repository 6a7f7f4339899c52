package model

import "time"

// Role values reported by the API for a user account.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents the authenticated customer profile as returned by
// GET /api/users/me. The API is the source of truth; this is a transient,
// re-fetchable copy.
type User struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	PhoneNumber      string    `json:"phoneNumber"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	Country          string    `json:"country"`
	Role             string    `json:"role"`
	LastPurchase     time.Time `json:"lastPurchase"`
	PurchaseQuantity int       `json:"purchaseQuantity"`
}

// AuthSession is the token + profile pair returned by the login and
// register endpoints. Persisting it is the caller's responsibility;
// services never write it anywhere themselves.
type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterInput is the payload for POST /api/users/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Email    string `json:"emailAddress"`
}
