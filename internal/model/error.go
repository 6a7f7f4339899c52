package model

// Standard error codes surfaced to callers
const (
	ErrCodeAuthRequired    = "AUTH_REQUIRED"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeInvalidPhone    = "INVALID_PHONE"
	ErrCodeInvalidPincode  = "INVALID_PINCODE"
	ErrCodeMissingCity     = "MISSING_CITY"
	ErrCodeMissingStreet   = "MISSING_STREET"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeSubmitInFlight  = "SUBMIT_IN_FLIGHT"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeNotFound        = "NOT_FOUND"
)

// DomainError is a client-side failure that was caught before (or instead
// of) a network call.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrAuthRequired    = NewDomainError(ErrCodeAuthRequired, "Sign in or register to continue")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Your cart is empty")
	ErrInvalidPhone    = NewDomainError(ErrCodeInvalidPhone, "Please enter a valid phone number")
	ErrInvalidPincode  = NewDomainError(ErrCodeInvalidPincode, "Please enter a valid pincode")
	ErrMissingCity     = NewDomainError(ErrCodeMissingCity, "Please enter your city")
	ErrMissingStreet   = NewDomainError(ErrCodeMissingStreet, "Please enter your street address")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrSubmitInFlight  = NewDomainError(ErrCodeSubmitInFlight, "An order submission is already in progress")
	ErrNotFound        = NewDomainError(ErrCodeNotFound, "Resource not found")
)
