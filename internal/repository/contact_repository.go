package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrMessageNotFound indicates that a contact message was not located
// in the DB.
var ErrMessageNotFound = errors.New("contact message not found")

// ContactRepo manages persistence for the `contact_messages` table.
type ContactRepo struct {
    db *sql.DB
}

// NewContactRepo constructs a ContactRepo with the given DB handle.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

const contactColumns = `id, first_name, last_name, email, phone, subject, message, inquiry_type, is_read, created_at`

// Create inserts a contact message and populates the generated ID and
// creation timestamp.
func (r *ContactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
    const q = `INSERT INTO contact_messages
        (first_name, last_name, email, phone, subject, message, inquiry_type)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        m.FirstName, m.LastName, strings.ToLower(strings.TrimSpace(m.Email)),
        nullIfEmpty(m.Phone), m.Subject, m.Message, m.InquiryType)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    const sel = `SELECT created_at FROM contact_messages WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, m.ID).Scan(&m.CreatedAt)
}

// List returns contact messages newest first.
func (r *ContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
    const q = `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.ContactMessage, 0)
    for rows.Next() {
        var (
            m     model.ContactMessage
            phone sql.NullString
        )
        if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &phone,
            &m.Subject, &m.Message, &m.InquiryType, &m.IsRead, &m.CreatedAt); err != nil {
            return nil, err
        }
        m.Phone = phone.String
        out = append(out, m)
    }
    return out, rows.Err()
}

// MarkRead flags a message as read by an admin.
func (r *ContactRepo) MarkRead(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx,
        "UPDATE contact_messages SET is_read = 1 WHERE id = ?", id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx,
            "SELECT 1 FROM contact_messages WHERE id = ?", id).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrMessageNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a contact message.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrMessageNotFound
    }
    return nil
}
