package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrTestimonialNotFound indicates that a testimonial was not located
// in the DB.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// ErrReviewLinkNotFound indicates that a review link was not located in
// the DB.
var ErrReviewLinkNotFound = errors.New("review link not found")

// TestimonialRepo manages persistence for testimonials and the external
// review links shown next to them.
type TestimonialRepo struct {
    db *sql.DB
}

// NewTestimonialRepo constructs a TestimonialRepo with the given DB
// handle.
func NewTestimonialRepo(db *sql.DB) *TestimonialRepo { return &TestimonialRepo{db: db} }

const testimonialColumns = `id, client_name, text, rating, is_approved, created_at, updated_at`

// ListApproved returns testimonials visible on the public site, newest
// first.
func (r *TestimonialRepo) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
    const q = `SELECT ` + testimonialColumns + ` FROM testimonials
               WHERE is_approved = 1 ORDER BY created_at DESC`
    return r.list(ctx, q)
}

// ListAll returns every testimonial for moderation in the admin
// console.
func (r *TestimonialRepo) ListAll(ctx context.Context) ([]model.Testimonial, error) {
    const q = `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`
    return r.list(ctx, q)
}

func (r *TestimonialRepo) list(ctx context.Context, q string) ([]model.Testimonial, error) {
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Testimonial, 0)
    for rows.Next() {
        var t model.Testimonial
        if err := rows.Scan(&t.ID, &t.ClientName, &t.Text, &t.Rating,
            &t.IsApproved, &t.CreatedAt, &t.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

// Create inserts a testimonial and populates the generated ID and
// timestamps. New testimonials start unapproved.
func (r *TestimonialRepo) Create(ctx context.Context, t *model.Testimonial) error {
    const q = `INSERT INTO testimonials (client_name, text, rating, is_approved) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.ClientName, t.Text, t.Rating, t.IsApproved)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM testimonials WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, t.ID).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// SetApproved toggles a testimonial's visibility on the public site.
func (r *TestimonialRepo) SetApproved(ctx context.Context, id uint64, approved bool) error {
    res, err := r.db.ExecContext(ctx,
        "UPDATE testimonials SET is_approved = ? WHERE id = ?", approved, id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM testimonials WHERE id = ?", id).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrTestimonialNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a testimonial.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrTestimonialNotFound
    }
    return nil
}

const reviewLinkColumns = `id, platform, url, is_active, sort_order, created_at, updated_at`

// ListActiveReviewLinks returns the external review destinations shown
// on the public site.
func (r *TestimonialRepo) ListActiveReviewLinks(ctx context.Context) ([]model.ReviewLink, error) {
    const q = `SELECT ` + reviewLinkColumns + ` FROM review_links
               WHERE is_active = 1 ORDER BY sort_order, id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.ReviewLink, 0)
    for rows.Next() {
        var l model.ReviewLink
        if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.IsActive,
            &l.SortOrder, &l.CreatedAt, &l.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, l)
    }
    return out, rows.Err()
}

// UpsertReviewLink creates or rewrites the link for one platform.
func (r *TestimonialRepo) UpsertReviewLink(ctx context.Context, l *model.ReviewLink) error {
    const q = `INSERT INTO review_links (platform, url, is_active, sort_order)
               VALUES (?, ?, ?, ?)
               ON DUPLICATE KEY UPDATE url = VALUES(url), is_active = VALUES(is_active),
                   sort_order = VALUES(sort_order)`
    _, err := r.db.ExecContext(ctx, q, l.Platform, l.URL, l.IsActive, l.SortOrder)
    return err
}

// DeleteReviewLink removes a review link.
func (r *TestimonialRepo) DeleteReviewLink(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM review_links WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrReviewLinkNotFound
    }
    return nil
}
