package model

// Cart is the authenticated user's server-side cart. The client holds
// only a transient copy and re-fetches after every mutation.
type Cart struct {
	ID     string     `json:"_id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartItem is a line in the cart: a product reference plus a denormalized
// snapshot of the product fields needed for display. Quantity is always
// at least 1; reaching 0 means removal, never a zero-quantity record.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

// Subtotal returns the sum of price*quantity across all items.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the total number of units in the cart.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Item returns the line for the given product, if present.
func (c *Cart) Item(productID string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}
