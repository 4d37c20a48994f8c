package model

import "time"

// Language codes supported by the site.  English is the source
// language; Spanish texts are optional until an admin provides them.
const (
    LangEnglish = "en"
    LangSpanish = "es"
)

// Translation represents a row in the `translations` table.  Keys are
// unique within the active set; inactive rows are kept for editing in
// the admin console but never enter the runtime cache.
//
// Fields:
//  ID          – primary key identifier.
//  Key         – structured lookup key (e.g. "nav.home").
//  Category    – grouping label for the admin UI, informational only.
//  EnglishText – required source text.
//  SpanishText – optional translated text; empty means not yet translated.
//  IsActive    – whether the row participates in runtime resolution.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Translation struct {
    ID          uint64    `json:"id"`
    Key         string    `json:"key"`
    Category    string    `json:"category"`
    EnglishText string    `json:"english_text"`
    SpanishText string    `json:"spanish_text,omitempty"`
    IsActive    bool      `json:"is_active"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}
