package handler

import (
    "context"
    "crypto/rand"
    "encoding/hex"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/queue"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
    queue_publisher "github.com/francislozanostudio-wq/francis-final-sub001/internal/service"
)

// BookingHandler serves the public booking form endpoints.
type BookingHandler struct {
    Bookings *repository.BookingRepo
    Services *repository.ServiceRepo
    AddOns   *repository.AddOnRepo
}

func NewBookingHandler(b *repository.BookingRepo, s *repository.ServiceRepo, a *repository.AddOnRepo) *BookingHandler {
    return &BookingHandler{Bookings: b, Services: s, AddOns: a}
}

type createBookingReq struct {
    FirstName       string   `json:"first_name" validate:"required"`
    LastName        string   `json:"last_name" validate:"required"`
    Email           string   `json:"email" validate:"required,email"`
    Phone           string   `json:"phone" validate:"required"`
    ServiceID       uint64   `json:"service_id" validate:"required"`
    AppointmentDate string   `json:"appointment_date" validate:"required"`
    AppointmentTime string   `json:"appointment_time" validate:"required"`
    AddOnIDs        []uint64 `json:"add_on_ids"`
    Notes           string   `json:"notes"`
}

// Create handles POST /v1/bookings. The appointment time is stored as
// the original 12-hour string, but it is parsed here once so a booking
// with an unusable time never enters the table.
func (h *BookingHandler) Create(c echo.Context) error {
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }

    if _, err := time.Parse(model.DateLayout, req.AppointmentDate); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "appointment_date must be YYYY-MM-DD"})
    }
    if _, _, err := reminder.ParseClockTime(req.AppointmentTime); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "appointment_time must look like \"2:00 PM\""})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svc, err := h.Services.GetByID(ctx, req.ServiceID)
    if err != nil {
        if err == repository.ErrServiceNotFound {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown service"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if !svc.IsActive {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "service is not bookable"})
    }

    selected, err := h.resolveAddOns(ctx, req.AddOnIDs)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    b := model.Booking{
        FirstName:         strings.TrimSpace(req.FirstName),
        LastName:          strings.TrimSpace(req.LastName),
        Email:             strings.ToLower(strings.TrimSpace(req.Email)),
        Phone:             strings.TrimSpace(req.Phone),
        ServiceID:         svc.ID,
        ServiceName:       svc.Name,
        ServicePriceCents: svc.PriceCents,
        AppointmentDate:   req.AppointmentDate,
        AppointmentTime:   strings.TrimSpace(req.AppointmentTime),
        Status:            model.BookingStatusConfirmed,
        SelectedAddOns:    selected,
        Notes:             strings.TrimSpace(req.Notes),
        ConfirmationCode:  newConfirmationCode(),
    }
    if err := h.Bookings.Create(ctx, &b); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
    }

    // Notify the studio through the broker. The booking already
    // succeeded, so a broker outage only costs the notification.
    _ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
        Booking:   b,
        CreatedAt: time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{
        "booking":           b,
        "confirmation_code": b.ConfirmationCode,
    })
}

// resolveAddOns snapshots the requested add-ons into the booking so
// later edits to the add-on catalog do not change past bookings.
func (h *BookingHandler) resolveAddOns(ctx context.Context, ids []uint64) ([]model.BookingAddOn, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    out := make([]model.BookingAddOn, 0, len(ids))
    for _, id := range ids {
        a, err := h.AddOns.GetByID(ctx, id)
        if err != nil || !a.IsActive {
            return nil, errUnknownAddOn
        }
        out = append(out, model.BookingAddOn{ID: a.ID, Name: a.Name, PriceCents: a.PriceCents})
    }
    return out, nil
}

var errUnknownAddOn = errors.New("unknown add-on")

// newConfirmationCode returns a short random code like "FLS-3F9A2C".
func newConfirmationCode() string {
    buf := make([]byte, 3)
    _, _ = rand.Read(buf)
    return "FLS-" + strings.ToUpper(hex.EncodeToString(buf))
}
