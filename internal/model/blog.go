package model

import "time"

// Blog is a rich-text article. Read-only on the storefront; the write
// paths exist for the admin side.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlogInput is the payload for creating or updating a blog post.
type BlogInput struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}
