package model

// CustomerRating is a testimonial: a customer's rating for a treatment,
// optionally with video links and images. Read-only on the storefront;
// created via an admin-side path.
type CustomerRating struct {
	ID           string   `json:"_id,omitempty"`
	CustomerName string   `json:"customerName"`
	Rating       float64  `json:"rating"`
	Description  string   `json:"description"`
	Treatment    string   `json:"treatment"`
	Links        []string `json:"links,omitempty"`
	ImageUrls    []string `json:"imageUrls,omitempty"`
}
