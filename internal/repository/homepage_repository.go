package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrSectionNotFound indicates that a homepage section was not located
// in the DB.
var ErrSectionNotFound = errors.New("homepage section not found")

// HomepageRepo manages persistence for the `homepage_content` table.
// Sections are addressed by their unique name rather than by ID so the
// admin console can write "hero" or "about" directly.
type HomepageRepo struct {
    db *sql.DB
}

// NewHomepageRepo constructs a HomepageRepo with the given DB handle.
func NewHomepageRepo(db *sql.DB) *HomepageRepo { return &HomepageRepo{db: db} }

const homepageColumns = `id, section, title, subtitle, body, image_url, created_at, updated_at`

// ListAll returns every homepage section.
func (r *HomepageRepo) ListAll(ctx context.Context) ([]model.HomepageContent, error) {
    const q = `SELECT ` + homepageColumns + ` FROM homepage_content ORDER BY section`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.HomepageContent, 0)
    for rows.Next() {
        h, err := scanHomepage(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, h)
    }
    return out, rows.Err()
}

// GetBySection retrieves one section by name. It returns
// ErrSectionNotFound when there is no matching row.
func (r *HomepageRepo) GetBySection(ctx context.Context, section string) (*model.HomepageContent, error) {
    const q = `SELECT ` + homepageColumns + ` FROM homepage_content WHERE section = ?`
    h, err := scanHomepage(r.db.QueryRowContext(ctx, q, section))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrSectionNotFound
    }
    if err != nil {
        return nil, err
    }
    return &h, nil
}

// Upsert creates or rewrites a section by name.
func (r *HomepageRepo) Upsert(ctx context.Context, h *model.HomepageContent) error {
    const q = `INSERT INTO homepage_content (section, title, subtitle, body, image_url)
               VALUES (?, ?, ?, ?, ?)
               ON DUPLICATE KEY UPDATE title = VALUES(title), subtitle = VALUES(subtitle),
                   body = VALUES(body), image_url = VALUES(image_url)`
    _, err := r.db.ExecContext(ctx, q, h.Section, h.Title,
        nullIfEmpty(h.Subtitle), nullIfEmpty(h.Body), nullIfEmpty(h.ImageURL))
    return err
}

func scanHomepage(s rowScanner) (model.HomepageContent, error) {
    var (
        h        model.HomepageContent
        subtitle sql.NullString
        body     sql.NullString
        imageURL sql.NullString
    )
    if err := s.Scan(&h.ID, &h.Section, &h.Title, &subtitle, &body, &imageURL,
        &h.CreatedAt, &h.UpdatedAt); err != nil {
        return model.HomepageContent{}, err
    }
    h.Subtitle = subtitle.String
    h.Body = body.String
    h.ImageURL = imageURL.String
    return h, nil
}
