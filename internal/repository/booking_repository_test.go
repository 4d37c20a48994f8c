package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

func bookingRows(b model.Booking) *sqlmock.Rows {
    return sqlmock.NewRows([]string{
        "id", "first_name", "last_name", "email", "phone", "service_id", "service_name",
        "service_price_cents", "appointment_date", "appointment_time", "status",
        "selected_add_ons", "notes", "confirmation_code", "created_at", "updated_at",
    }).AddRow(
        b.ID, b.FirstName, b.LastName, b.Email, b.Phone, b.ServiceID, b.ServiceName,
        b.ServicePriceCents, b.AppointmentDate, b.AppointmentTime, b.Status,
        "[]", b.Notes, b.ConfirmationCode, time.Now(), time.Now(),
    )
}

func TestBookingCreateBindsStatus(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()
    repo := NewBookingRepo(db)

    b := model.Booking{
        FirstName:         "Maya",
        LastName:          "Reyes",
        Email:             "Maya.Reyes@Example.com",
        Phone:             "555-0144",
        ServiceID:         3,
        ServiceName:       "Classic Manicure",
        ServicePriceCents: 4500,
        AppointmentDate:   "2026-09-02",
        AppointmentTime:   "2:00 PM",
        Status:            model.BookingStatusConfirmed,
        SelectedAddOns:    []model.BookingAddOn{},
        ConfirmationCode:  "FLS-1A2B3C",
    }

    // The public form marks bookings confirmed; the INSERT must carry
    // that value rather than leave the column to its schema default.
    mock.ExpectExec("INSERT INTO bookings").
        WithArgs("Maya", "Reyes", "maya.reyes@example.com", "555-0144",
            uint64(3), "Classic Manicure", uint32(4500),
            "2026-09-02", "2:00 PM", model.BookingStatusConfirmed,
            "[]", "", "FLS-1A2B3C").
        WillReturnResult(sqlmock.NewResult(42, 1))

    sel := b
    sel.ID = 42
    mock.ExpectQuery("SELECT .+ FROM bookings WHERE id").
        WithArgs(uint64(42)).
        WillReturnRows(bookingRows(sel))

    require.NoError(t, repo.Create(context.Background(), &b))
    assert.Equal(t, uint64(42), b.ID)
    assert.Equal(t, model.BookingStatusConfirmed, b.Status)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateDefaultsEmptyStatusToPending(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()
    repo := NewBookingRepo(db)

    b := model.Booking{
        FirstName:        "Ana",
        LastName:         "Sol",
        Email:            "ana@example.com",
        Phone:            "555-0101",
        ServiceID:        1,
        ServiceName:      "Gel Manicure",
        AppointmentDate:  "2026-09-03",
        AppointmentTime:  "10:00 AM",
        SelectedAddOns:   []model.BookingAddOn{},
        ConfirmationCode: "FLS-0D4E5F",
    }

    mock.ExpectExec("INSERT INTO bookings").
        WithArgs("Ana", "Sol", "ana@example.com", "555-0101",
            uint64(1), "Gel Manicure", uint32(0),
            "2026-09-03", "10:00 AM", model.BookingStatusPending,
            "[]", "", "FLS-0D4E5F").
        WillReturnResult(sqlmock.NewResult(7, 1))

    sel := b
    sel.ID = 7
    sel.Status = model.BookingStatusPending
    mock.ExpectQuery("SELECT .+ FROM bookings WHERE id").
        WithArgs(uint64(7)).
        WillReturnRows(bookingRows(sel))

    require.NoError(t, repo.Create(context.Background(), &b))
    assert.Equal(t, model.BookingStatusPending, b.Status)
    assert.NoError(t, mock.ExpectationsWereMet())
}
