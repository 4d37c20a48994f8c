package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrGalleryItemNotFound indicates that a gallery item was not located
// in the DB.
var ErrGalleryItemNotFound = errors.New("gallery item not found")

// GalleryRepo manages persistence for the `gallery` table.
type GalleryRepo struct {
    db *sql.DB
}

// NewGalleryRepo constructs a GalleryRepo with the given DB handle.
func NewGalleryRepo(db *sql.DB) *GalleryRepo { return &GalleryRepo{db: db} }

const galleryColumns = `id, title, image_url, category, is_active, sort_order, created_at, updated_at`

// ListActive returns visible gallery items, optionally filtered by
// category. An empty category means all categories.
func (r *GalleryRepo) ListActive(ctx context.Context, category string) ([]model.GalleryItem, error) {
    q := `SELECT ` + galleryColumns + ` FROM gallery WHERE is_active = 1`
    args := []interface{}{}
    if category != "" {
        q += " AND category = ?"
        args = append(args, category)
    }
    q += " ORDER BY sort_order, id"
    return r.list(ctx, q, args...)
}

// ListAll returns every gallery item for the admin console.
func (r *GalleryRepo) ListAll(ctx context.Context) ([]model.GalleryItem, error) {
    const q = `SELECT ` + galleryColumns + ` FROM gallery ORDER BY sort_order, id`
    return r.list(ctx, q)
}

func (r *GalleryRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.GalleryItem, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.GalleryItem, 0)
    for rows.Next() {
        var g model.GalleryItem
        if err := rows.Scan(&g.ID, &g.Title, &g.ImageURL, &g.Category,
            &g.IsActive, &g.SortOrder, &g.CreatedAt, &g.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, g)
    }
    return out, rows.Err()
}

// Create inserts a gallery item and populates the generated ID and
// timestamps.
func (r *GalleryRepo) Create(ctx context.Context, g *model.GalleryItem) error {
    const q = `INSERT INTO gallery (title, image_url, category, is_active, sort_order)
               VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, g.Title, g.ImageURL, g.Category, g.IsActive, g.SortOrder)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    g.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM gallery WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, g.ID).Scan(&g.CreatedAt, &g.UpdatedAt)
}

// Update rewrites an existing gallery item. It returns
// ErrGalleryItemNotFound when the ID does not exist.
func (r *GalleryRepo) Update(ctx context.Context, g *model.GalleryItem) error {
    const q = `UPDATE gallery SET title = ?, image_url = ?, category = ?, is_active = ?, sort_order = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, g.Title, g.ImageURL, g.Category, g.IsActive, g.SortOrder, g.ID)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM gallery WHERE id = ?", g.ID).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrGalleryItemNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a gallery item.
func (r *GalleryRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM gallery WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrGalleryItemNotFound
    }
    return nil
}
