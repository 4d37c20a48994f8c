package handler

import (
    "fmt"
    "log/slog"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// JobHandler exposes the scheduled-job endpoints called by an external
// cron service. The reminder job is idempotent per window in practice
// because the scheduler fires it once per slot; the handler itself does
// not deduplicate sends.
type JobHandler struct {
    Bookings *repository.BookingRepo
    Engine   *reminder.Engine
    Log      *slog.Logger
}

func NewJobHandler(b *repository.BookingRepo, e *reminder.Engine, log *slog.Logger) *JobHandler {
    return &JobHandler{Bookings: b, Engine: e, Log: log}
}

// RunReminders handles POST /v1/jobs/reminders: loads today's and
// tomorrow's bookings and lets the engine decide who is due. The two
// date queries fail independently; losing one half only costs that
// half's reminders and is noted in the results.
func (h *JobHandler) RunReminders(c echo.Context) error {
    ctx := c.Request().Context()
    now := time.Now()
    today := now.Format(model.DateLayout)
    tomorrow := now.Add(24 * time.Hour).Format(model.DateLayout)

    var candidates []model.Booking
    var loadErrors []string

    forToday, err := h.Bookings.ListByDate(ctx, today)
    if err != nil {
        h.Log.Error("reminder job: loading today's bookings failed", "date", today, "error", err)
        loadErrors = append(loadErrors, fmt.Sprintf("load bookings for %s: %v", today, err))
    } else {
        candidates = append(candidates, forToday...)
    }

    forTomorrow, err := h.Bookings.ListByDate(ctx, tomorrow)
    if err != nil {
        h.Log.Error("reminder job: loading tomorrow's bookings failed", "date", tomorrow, "error", err)
        loadErrors = append(loadErrors, fmt.Sprintf("load bookings for %s: %v", tomorrow, err))
    } else {
        candidates = append(candidates, forTomorrow...)
    }

    if len(loadErrors) == 2 {
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "Failed to load bookings",
            "details": loadErrors,
        })
    }

    res := h.Engine.SelectDueBookings(ctx, candidates, now)
    res.Errors = append(loadErrors, res.Errors...)
    if res.Errors == nil {
        res.Errors = []string{}
    }

    h.Log.Info("reminder job finished",
        "sent_24h", res.Sent24h, "sent_1h", res.Sent1h, "errors", len(res.Errors))

    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": fmt.Sprintf("Sent %d 24-hour and %d 1-hour reminders", res.Sent24h, res.Sent1h),
        "results": res,
    })
}
