package model

import "time"

// GalleryItem represents a row in the `gallery` table.  Images are
// hosted externally; only the URL and presentation metadata live here.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – short caption shown under the image.
//  ImageURL  – absolute URL of the hosted image.
//  Category  – grouping used by the gallery filter tabs.
//  IsActive  – hidden from the public gallery when false.
//  SortOrder – manual ordering within a category.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type GalleryItem struct {
    ID        uint64    `json:"id"`
    Title     string    `json:"title"`
    ImageURL  string    `json:"image_url"`
    Category  string    `json:"category"`
    IsActive  bool      `json:"is_active"`
    SortOrder int32     `json:"sort_order"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
