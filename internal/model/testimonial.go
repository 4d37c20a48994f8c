package model

import "time"

// Testimonial represents a row in the `testimonials` table: a client
// review displayed on the public site once approved by an admin.
type Testimonial struct {
    ID         uint64    `json:"id"`
    ClientName string    `json:"client_name"`
    Text       string    `json:"text"`
    Rating     uint8     `json:"rating"` // 1..5 stars
    IsApproved bool      `json:"is_approved"`
    CreatedAt  time.Time `json:"created_at"`
    UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewLink represents a row in the `review_links` table: an external
// review destination (Google, Yelp, ...) offered to happy clients.
type ReviewLink struct {
    ID        uint64    `json:"id"`
    Platform  string    `json:"platform"`
    URL       string    `json:"url"`
    IsActive  bool      `json:"is_active"`
    SortOrder int32     `json:"sort_order"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
