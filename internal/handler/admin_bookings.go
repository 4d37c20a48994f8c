package handler

import (
    "context"
    "log/slog"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/email"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// AdminBookingHandler serves the booking management screens of the
// admin console, including the manual "send reminder" action.
type AdminBookingHandler struct {
    Bookings *repository.BookingRepo
    Mailer   *email.Mailer
    Log      *slog.Logger
}

func NewAdminBookingHandler(b *repository.BookingRepo, m *email.Mailer, log *slog.Logger) *AdminBookingHandler {
    return &AdminBookingHandler{Bookings: b, Mailer: m, Log: log}
}

// bookingRow is one row of the admin booking list: the booking plus the
// state of its reminder action, computed fresh on every request.
type bookingRow struct {
    model.Booking
    ReminderLabel reminder.Label `json:"reminder_label"`
}

// List handles GET /v1/admin/bookings with optional ?status= and ?date=
// filters.
func (h *AdminBookingHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    bookings, err := h.Bookings.List(ctx, c.QueryParam("status"), c.QueryParam("date"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    now := time.Now()
    rows := make([]bookingRow, 0, len(bookings))
    for _, b := range bookings {
        lbl, err := reminder.LabelFor(b.AppointmentDate, b.AppointmentTime, now)
        if err != nil {
            // Unparseable stored time: show a disabled action rather
            // than failing the whole list.
            lbl = reminder.Label{Text: "Invalid Time", Disabled: true, Variant: reminder.VariantNeutral}
        }
        rows = append(rows, bookingRow{Booking: b, ReminderLabel: lbl})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// Get handles GET /v1/admin/bookings/:id.
func (h *AdminBookingHandler) Get(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    b, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrBookingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, b)
}

type updateStatusReq struct {
    Status string `json:"status"`
}

// UpdateStatus handles PUT /v1/admin/bookings/:id/status.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req updateStatusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    switch req.Status {
    case model.BookingStatusPending, model.BookingStatusConfirmed,
        model.BookingStatusCompleted, model.BookingStatusCancelled:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Bookings.UpdateStatus(ctx, id, req.Status); err != nil {
        if err == repository.ErrBookingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    h.Log.Info("booking status updated", "booking_id", id, "status", req.Status)
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete handles DELETE /v1/admin/bookings/:id.
func (h *AdminBookingHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Bookings.Delete(ctx, id); err != nil {
        if err == repository.ErrBookingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Remind handles POST /v1/admin/bookings/:id/remind: the admin's manual
// send button. The reminder kind follows the booking's current window
// (1-hour inside one hour, otherwise 24-hour); past appointments are
// rejected. Send failures surface the underlying error so the admin
// sees exactly why the provider refused the message.
func (h *AdminBookingHandler) Remind(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    b, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrBookingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    now := time.Now()
    w, err := reminder.Classify(b.AppointmentDate, b.AppointmentTime, now)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    if w.TotalHours < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "appointment has already passed"})
    }
    kind := reminder.Kind24Hour
    if w.Within1Hour {
        kind = reminder.Kind1Hour
    }

    if err := h.Mailer.SendReminder(ctx, kind, *b); err != nil {
        h.Log.Error("manual reminder failed", "booking_id", b.ID, "kind", kind, "error", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "Failed to send reminder",
            "details": err.Error(),
        })
    }

    h.Log.Info("manual reminder sent", "booking_id", b.ID, "kind", kind)
    return c.JSON(http.StatusOK, echo.Map{"success": true, "kind": kind})
}
