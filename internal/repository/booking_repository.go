// Package repository contains data access logic for the studio's
// tables. This file covers bookings: rows created by the public booking
// form and managed from the admin console. Appointment dates and times
// are stored as the exact strings the client chose; see the model
// package for the reasoning.
package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "errors"
    "strings"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, first_name, last_name, email, phone, service_id, service_name,
    service_price_cents, appointment_date, appointment_time, status, selected_add_ons,
    notes, confirmation_code, created_at, updated_at`

// Create inserts a new booking and populates the generated ID and the
// DB-default timestamps on the given struct. The status is bound
// explicitly rather than left to a column default so the caller's
// choice is authoritative. The add-on selection is serialized to JSON
// so the booking keeps the names and prices that were current when it
// was made.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    addOns, err := json.Marshal(b.SelectedAddOns)
    if err != nil {
        return err
    }
    if b.Status == "" {
        b.Status = model.BookingStatusPending
    }
    const q = `INSERT INTO bookings
        (first_name, last_name, email, phone, service_id, service_name, service_price_cents,
         appointment_date, appointment_time, status, selected_add_ons, notes, confirmation_code)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        b.FirstName, b.LastName, strings.ToLower(strings.TrimSpace(b.Email)), b.Phone,
        b.ServiceID, b.ServiceName, b.ServicePriceCents,
        b.AppointmentDate, b.AppointmentTime, b.Status,
        string(addOns), b.Notes, b.ConfirmationCode)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    return r.scanOne(r.db.QueryRowContext(ctx, sel, b.ID), b)
}

// GetByID retrieves a booking by its ID. It returns ErrBookingNotFound
// when there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    var b model.Booking
    if err := r.scanOne(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return &b, nil
}

// List returns bookings newest-first, optionally filtered by status
// and/or appointment date. Empty filter values mean "all".
func (r *BookingRepo) List(ctx context.Context, status, date string) ([]model.Booking, error) {
    q := `SELECT ` + bookingColumns + ` FROM bookings`
    var (
        conds []string
        args  []interface{}
    )
    if status != "" {
        conds = append(conds, "status = ?")
        args = append(args, status)
    }
    if date != "" {
        conds = append(conds, "appointment_date = ?")
        args = append(args, date)
    }
    if len(conds) > 0 {
        q += " WHERE " + strings.Join(conds, " AND ")
    }
    q += " ORDER BY created_at DESC"
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := r.scanRow(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// ListByDate returns all bookings for one appointment date regardless
// of status; the reminder engine applies its own confirmed-only filter.
// Ordered by appointment time for deterministic batch output.
func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings
               WHERE appointment_date = ? ORDER BY appointment_time, id`
    rows, err := r.db.QueryContext(ctx, q, date)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := r.scanRow(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// UpdateStatus sets the status of a booking. It returns
// ErrBookingNotFound when the booking does not exist.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
    res, err := r.db.ExecContext(ctx,
        "UPDATE bookings SET status = ? WHERE id = ?", status, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Either the row is missing or the status already matched;
        // distinguish by probing for the row.
        if _, err := r.GetByID(ctx, id); err != nil {
            return err
        }
    }
    return nil
}

// Delete removes a booking. It returns ErrBookingNotFound when nothing
// was deleted.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrBookingNotFound
    }
    return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
    Scan(dest ...interface{}) error
}

func (r *BookingRepo) scanOne(row *sql.Row, b *model.Booking) error { return r.scan(row, b) }

func (r *BookingRepo) scanRow(rows *sql.Rows, b *model.Booking) error { return r.scan(rows, b) }

func (r *BookingRepo) scan(s rowScanner, b *model.Booking) error {
    var (
        addOns sql.NullString
        notes  sql.NullString
    )
    if err := s.Scan(
        &b.ID, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
        &b.ServiceID, &b.ServiceName, &b.ServicePriceCents,
        &b.AppointmentDate, &b.AppointmentTime, &b.Status, &addOns,
        &notes, &b.ConfirmationCode, &b.CreatedAt, &b.UpdatedAt,
    ); err != nil {
        return err
    }
    b.Notes = notes.String
    b.SelectedAddOns = []model.BookingAddOn{}
    if addOns.Valid && addOns.String != "" {
        if err := json.Unmarshal([]byte(addOns.String), &b.SelectedAddOns); err != nil {
            // A malformed add-on blob should not make the whole booking
            // unreadable in the admin list.
            b.SelectedAddOns = []model.BookingAddOn{}
        }
    }
    return nil
}
