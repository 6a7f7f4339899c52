package model

import "time"

// Product represents a catalog entry. Read-only from the client's
// perspective; the catalog is owned server-side.
type Product struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Offer           float64   `json:"offer"`
	DiscountedPrice float64   `json:"discountedPrice"`
	BoughtQuantity  int       `json:"boughtQuantity"`
	ImageUrls       []string  `json:"imageUrls"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PrimaryImage returns the first image URL, which is the display image.
func (p *Product) PrimaryImage() string {
	if len(p.ImageUrls) == 0 {
		return ""
	}
	return p.ImageUrls[0]
}

// EffectivePrice returns the price a customer pays. The server usually
// provides DiscountedPrice; when it is absent the offer percentage is
// applied to the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	if p.Offer > 0 {
		return p.Price * (1 - p.Offer/100)
	}
	return p.Price
}
