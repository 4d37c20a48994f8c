package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrAddOnNotFound indicates that an add-on was not located in the DB.
var ErrAddOnNotFound = errors.New("add-on not found")

// AddOnRepo manages persistence for the `add_ons` table.
type AddOnRepo struct {
    db *sql.DB
}

// NewAddOnRepo constructs an AddOnRepo with the given DB handle.
func NewAddOnRepo(db *sql.DB) *AddOnRepo { return &AddOnRepo{db: db} }

const addOnColumns = `id, name, description, price_cents, is_active, sort_order, created_at, updated_at`

// ListActive returns add-ons offered on the public booking form.
func (r *AddOnRepo) ListActive(ctx context.Context) ([]model.AddOn, error) {
    const q = `SELECT ` + addOnColumns + ` FROM add_ons WHERE is_active = 1 ORDER BY sort_order, id`
    return r.list(ctx, q)
}

// ListAll returns every add-on for the admin console.
func (r *AddOnRepo) ListAll(ctx context.Context) ([]model.AddOn, error) {
    const q = `SELECT ` + addOnColumns + ` FROM add_ons ORDER BY sort_order, id`
    return r.list(ctx, q)
}

func (r *AddOnRepo) list(ctx context.Context, q string) ([]model.AddOn, error) {
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.AddOn, 0)
    for rows.Next() {
        var a model.AddOn
        if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.PriceCents,
            &a.IsActive, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, a)
    }
    return out, rows.Err()
}

// GetByID retrieves an add-on by its ID.
func (r *AddOnRepo) GetByID(ctx context.Context, id uint64) (*model.AddOn, error) {
    const q = `SELECT ` + addOnColumns + ` FROM add_ons WHERE id = ?`
    var a model.AddOn
    err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.Description, &a.PriceCents,
        &a.IsActive, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrAddOnNotFound
    }
    if err != nil {
        return nil, err
    }
    return &a, nil
}

// Create inserts an add-on and populates the generated ID and
// timestamps.
func (r *AddOnRepo) Create(ctx context.Context, a *model.AddOn) error {
    const q = `INSERT INTO add_ons (name, description, price_cents, is_active, sort_order)
               VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, a.Name, a.Description, a.PriceCents, a.IsActive, a.SortOrder)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    a.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM add_ons WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// Update rewrites an existing add-on.
func (r *AddOnRepo) Update(ctx context.Context, a *model.AddOn) error {
    const q = `UPDATE add_ons SET name = ?, description = ?, price_cents = ?, is_active = ?, sort_order = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, a.Name, a.Description, a.PriceCents, a.IsActive, a.SortOrder, a.ID)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        if _, err := r.GetByID(ctx, a.ID); err != nil {
            return err
        }
    }
    return nil
}

// Delete removes an add-on.
func (r *AddOnRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM add_ons WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrAddOnNotFound
    }
    return nil
}
