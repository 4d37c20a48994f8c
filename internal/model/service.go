package model

import "time"

// Service represents a row in the `services` table: one bookable nail
// service shown on the public services page.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name (e.g. "Classic Pedicure").
//  Description – public description text.
//  PriceCents  – price in cents.
//  DurationMin – expected duration in minutes.
//  IsActive    – inactive services are hidden from the public site.
//  SortOrder   – manual ordering on the services page.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Service struct {
    ID          uint64    `json:"id"`
    Name        string    `json:"name"`
    Description string    `json:"description"`
    PriceCents  uint32    `json:"price_cents"`
    DurationMin uint32    `json:"duration_min"`
    IsActive    bool      `json:"is_active"`
    SortOrder   int32     `json:"sort_order"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

// AddOn represents a row in the `add_ons` table: an optional extra a
// client can attach to any booking (e.g. nail art, french tips).
type AddOn struct {
    ID          uint64    `json:"id"`
    Name        string    `json:"name"`
    Description string    `json:"description"`
    PriceCents  uint32    `json:"price_cents"`
    IsActive    bool      `json:"is_active"`
    SortOrder   int32     `json:"sort_order"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}
