package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrServiceNotFound indicates that a service was not located in the DB.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepo manages persistence for the `services` table.
type ServiceRepo struct {
    db *sql.DB
}

// NewServiceRepo constructs a ServiceRepo with the given DB handle.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = `id, name, description, price_cents, duration_min, is_active, sort_order, created_at, updated_at`

// ListActive returns services shown on the public site, in manual sort
// order.
func (r *ServiceRepo) ListActive(ctx context.Context) ([]model.Service, error) {
    const q = `SELECT ` + serviceColumns + ` FROM services WHERE is_active = 1 ORDER BY sort_order, id`
    return r.list(ctx, q)
}

// ListAll returns every service for the admin console.
func (r *ServiceRepo) ListAll(ctx context.Context) ([]model.Service, error) {
    const q = `SELECT ` + serviceColumns + ` FROM services ORDER BY sort_order, id`
    return r.list(ctx, q)
}

func (r *ServiceRepo) list(ctx context.Context, q string) ([]model.Service, error) {
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Service, 0)
    for rows.Next() {
        var s model.Service
        if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PriceCents, &s.DurationMin,
            &s.IsActive, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}

// GetByID retrieves a service by its ID. It returns ErrServiceNotFound
// when there is no matching row.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
    const q = `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
    var s model.Service
    err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description, &s.PriceCents,
        &s.DurationMin, &s.IsActive, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrServiceNotFound
    }
    if err != nil {
        return nil, err
    }
    return &s, nil
}

// Create inserts a service and populates the generated ID and
// timestamps.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
    const q = `INSERT INTO services (name, description, price_cents, duration_min, is_active, sort_order)
               VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, s.Name, s.Description, s.PriceCents, s.DurationMin, s.IsActive, s.SortOrder)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    s.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM services WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Update rewrites an existing service. It returns ErrServiceNotFound
// when the ID does not exist.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
    const q = `UPDATE services SET name = ?, description = ?, price_cents = ?, duration_min = ?,
               is_active = ?, sort_order = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, s.Name, s.Description, s.PriceCents, s.DurationMin,
        s.IsActive, s.SortOrder, s.ID)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        if _, err := r.GetByID(ctx, s.ID); err != nil {
            return err
        }
    }
    return nil
}

// Delete removes a service. It returns ErrServiceNotFound when nothing
// was deleted.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrServiceNotFound
    }
    return nil
}
