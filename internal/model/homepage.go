package model

import "time"

// HomepageContent represents a row in the `homepage_content` table.
// Each row is a named section of the home page (hero, about, ...) whose
// texts the admin can edit without a deployment.  Section names are
// unique.
type HomepageContent struct {
    ID        uint64    `json:"id"`
    Section   string    `json:"section"`
    Title     string    `json:"title"`
    Subtitle  string    `json:"subtitle,omitempty"`
    Body      string    `json:"body,omitempty"`
    ImageURL  string    `json:"image_url,omitempty"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
