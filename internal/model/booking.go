package model

import "time"

// Booking statuses as stored in bookings.status.  Reminders are only
// ever sent for confirmed bookings; completed and cancelled bookings
// are kept for the admin history views.
const (
    BookingStatusPending   = "pending"
    BookingStatusConfirmed = "confirmed"
    BookingStatusCompleted = "completed"
    BookingStatusCancelled = "cancelled"
)

// DateLayout is the storage format of bookings.appointment_date.  The
// appointment date is a naive calendar date: no time zone conversion is
// applied anywhere between the client, the database and the reminder
// engine.
const DateLayout = "2006-01-02"

// Booking represents a row in the `bookings` table.  The appointment
// time is kept as the original 12-hour clock string (e.g. "2:00 PM")
// exactly as entered through the public booking form; the reminder
// engine converts it to a 24-hour value on every evaluation.
//
// Fields:
//  ID               – primary key identifier.
//  FirstName        – client first name.
//  LastName         – client last name.
//  Email            – client email address (reminder recipient).
//  Phone            – client phone number.
//  ServiceID        – reference to the booked service.
//  ServiceName      – denormalized service name at booking time.
//  ServicePriceCents – denormalized service price at booking time.
//  AppointmentDate  – calendar date string in DateLayout.
//  AppointmentTime  – 12-hour clock string with AM/PM marker.
//  Status           – one of the BookingStatus* constants.
//  SelectedAddOns   – add-ons chosen with the booking.
//  Notes            – optional free-form client notes.
//  ConfirmationCode – short code shown to the client after booking.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Booking struct {
    ID                uint64         `json:"id"`
    FirstName         string         `json:"first_name"`
    LastName          string         `json:"last_name"`
    Email             string         `json:"email"`
    Phone             string         `json:"phone"`
    ServiceID         uint64         `json:"service_id"`
    ServiceName       string         `json:"service_name"`
    ServicePriceCents uint32         `json:"service_price_cents"`
    AppointmentDate   string         `json:"appointment_date"`
    AppointmentTime   string         `json:"appointment_time"`
    Status            string         `json:"status"`
    SelectedAddOns    []BookingAddOn `json:"selected_add_ons"`
    Notes             string         `json:"notes,omitempty"`
    ConfirmationCode  string         `json:"confirmation_code"`
    CreatedAt         time.Time      `json:"created_at"`
    UpdatedAt         time.Time      `json:"updated_at"`
}

// BookingAddOn is one add-on attached to a booking.  The set is stored
// as a JSON array in bookings.selected_add_ons so the booking keeps the
// name and price that were current when it was made, even if the add-on
// record is later edited or removed.
type BookingAddOn struct {
    ID         uint64 `json:"id"`
    Name       string `json:"name"`
    PriceCents uint32 `json:"price_cents"`
}

// ClientName returns the client's full display name.
func (b Booking) ClientName() string {
    return b.FirstName + " " + b.LastName
}
