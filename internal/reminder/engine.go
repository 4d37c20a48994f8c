// Package reminder decides whether and which appointment reminder an
// individual booking is due for.  It works entirely on the booking's
// naive local appointment date plus its 12-hour clock time string; no
// time zone conversion happens anywhere in this package.
package reminder

import (
    "context"
    "fmt"
    "log/slog"
    "math"
    "strconv"
    "strings"
    "time"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// Reminder kinds passed to the email sender.
const (
    Kind24Hour = "reminder-24h"
    Kind1Hour  = "reminder-1h"
)

// Tolerance band for the batch 1-hour selection: a booking today is due
// when its time-until-appointment falls inside [1-ToleranceHours,
// 1+ToleranceHours].  The interactive Classify check deliberately stays
// a strict <= 1 and must not be unified with this band.
const ToleranceHours = 0.25

// Window is the computed timing of one booking relative to "now".  It
// is recomputed on every evaluation and never cached.  TotalHours is
// signed: negative means the appointment has already passed, in which
// case both flags still read true under the naive comparisons below.
// Callers deciding to actually send must guard with a non-negative
// lower bound themselves.
type Window struct {
    TotalHours    float64
    Within24Hours bool
    Within1Hour   bool
}

// ParseClockTime converts a 12-hour clock string ("2:00 PM", "12:00 AM")
// into a 24-hour hour and minute.  The conversion rule is fixed: split
// on the space into time and modifier, split the time on ":", map hour
// 12 to 0, then add 12 when the modifier is PM.  Anything that does not
// match the expected shape is an error.
func ParseClockTime(s string) (hour, minute int, err error) {
    parts := strings.Split(strings.TrimSpace(s), " ")
    if len(parts) != 2 {
        return 0, 0, fmt.Errorf("invalid time %q: want \"h:mm AM|PM\"", s)
    }
    hm := strings.Split(parts[0], ":")
    if len(hm) != 2 {
        return 0, 0, fmt.Errorf("invalid time %q: want \"h:mm AM|PM\"", s)
    }
    modifier := strings.ToUpper(parts[1])
    if modifier != "AM" && modifier != "PM" {
        return 0, 0, fmt.Errorf("invalid time %q: unknown modifier %q", s, parts[1])
    }
    hour, err = strconv.Atoi(hm[0])
    if err != nil || hour < 1 || hour > 12 {
        return 0, 0, fmt.Errorf("invalid time %q: bad hour", s)
    }
    minute, err = strconv.Atoi(hm[1])
    if err != nil || minute < 0 || minute > 59 {
        return 0, 0, fmt.Errorf("invalid time %q: bad minute", s)
    }
    if hour == 12 {
        hour = 0
    }
    if modifier == "PM" {
        hour += 12
    }
    return hour, minute, nil
}

// CombineDateTime builds the appointment instant from a calendar date
// string (model.DateLayout) and a 12-hour clock string, in the location
// of the reference time.  The date stays naive: the same wall-clock
// values the client entered.
func CombineDateTime(date, clock string, ref time.Time) (time.Time, error) {
    d, err := time.ParseInLocation(model.DateLayout, date, ref.Location())
    if err != nil {
        return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
    }
    h, m, err := ParseClockTime(clock)
    if err != nil {
        return time.Time{}, err
    }
    return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, ref.Location()), nil
}

// Classify computes the reminder window of a single booking.  Both
// flags use plain upper-bound comparisons: an appointment 30 hours out
// is within neither, one 10 hours out is within 24, one in the past is
// within both (see Window).
func Classify(date, clock string, now time.Time) (Window, error) {
    at, err := CombineDateTime(date, clock, now)
    if err != nil {
        return Window{}, err
    }
    total := at.Sub(now).Hours()
    return Window{
        TotalHours:    total,
        Within24Hours: total <= 24,
        Within1Hour:   total <= 1,
    }, nil
}

// Label variants used by the admin booking list to style the manual
// "send reminder" action.
const (
    VariantNeutral  = "neutral"
    VariantEmphasis = "emphasis"
)

// Label describes the state of the manual reminder action for one
// booking as shown in the admin console.
type Label struct {
    Text     string `json:"text"`
    Disabled bool   `json:"disabled"`
    Variant  string `json:"variant"`
}

// LabelFor returns the reminder action label for a booking.  Past
// appointments disable the action; bookings inside the 1-hour or
// 24-hour window get an emphasized send label; anything further out
// shows the rounded-up hours remaining.
func LabelFor(date, clock string, now time.Time) (Label, error) {
    w, err := Classify(date, clock, now)
    if err != nil {
        return Label{}, err
    }
    switch {
    case w.TotalHours < 0:
        return Label{Text: "Appointment Passed", Disabled: true, Variant: VariantNeutral}, nil
    case w.Within1Hour:
        return Label{Text: "Send 1-Hour Reminder", Variant: VariantEmphasis}, nil
    case w.Within24Hours:
        return Label{Text: "Send 24-Hour Reminder", Variant: VariantEmphasis}, nil
    default:
        return Label{
            Text:    fmt.Sprintf("Send Reminder (%dh)", int(math.Ceil(w.TotalHours))),
            Variant: VariantNeutral,
        }, nil
    }
}

// Sender delivers one reminder email for a booking.  kind is Kind24Hour
// or Kind1Hour.
type Sender interface {
    SendReminder(ctx context.Context, kind string, b model.Booking) error
}

// BatchResult summarizes one run of SelectDueBookings.  Errors holds
// one message per failed booking, keyed by booking id in the text; a
// non-empty list never means the batch aborted early.
type BatchResult struct {
    Sent24h int      `json:"sent_24h"`
    Sent1h  int      `json:"sent_1h"`
    Errors  []string `json:"errors"`
}

// Engine runs the batch reminder selection.  SendDelay is the pause
// inserted between consecutive email sends to stay under the mail
// provider's rate limits; it is throttling policy, not tuning, so keep
// it even when it looks removable.
type Engine struct {
    Sender    Sender
    SendDelay time.Duration
    Log       *slog.Logger
}

// NewEngine returns an Engine with the given sender and inter-send
// delay.  A nil logger falls back to slog.Default.
func NewEngine(s Sender, delay time.Duration, log *slog.Logger) *Engine {
    if log == nil {
        log = slog.Default()
    }
    return &Engine{Sender: s, SendDelay: delay, Log: log}
}

// SelectDueBookings walks the candidate bookings and sends every due
// reminder, collecting per-booking failures instead of aborting.  Two
// distinct policies apply:
//
//   - 24-hour reminders go to confirmed bookings whose appointment date
//     equals the calendar date of now+24h.  This is a date-only match
//     ("tomorrow's bookings"), coarser than the interactive Classify
//     window, and the two must stay separate.
//   - 1-hour reminders go to confirmed bookings dated today whose
//     time-until-appointment is within the tolerance band around one
//     hour (0.75h..1.25h).
//
// Cancelled, completed and pending bookings are skipped outright.  A
// malformed appointment time fails only that booking.  The method never
// returns an error; everything ends up in the BatchResult.
func (e *Engine) SelectDueBookings(ctx context.Context, bookings []model.Booking, now time.Time) BatchResult {
    var res BatchResult
    tomorrow := now.Add(24 * time.Hour).Format(model.DateLayout)
    today := now.Format(model.DateLayout)

    sent := 0
    for _, b := range bookings {
        if b.Status != model.BookingStatusConfirmed {
            continue
        }
        var kind string
        switch b.AppointmentDate {
        case tomorrow:
            kind = Kind24Hour
        case today:
            w, err := Classify(b.AppointmentDate, b.AppointmentTime, now)
            if err != nil {
                res.Errors = append(res.Errors, fmt.Sprintf("booking %d: %v", b.ID, err))
                continue
            }
            if w.TotalHours < 1-ToleranceHours || w.TotalHours > 1+ToleranceHours {
                continue
            }
            kind = Kind1Hour
        default:
            continue
        }

        if sent > 0 && e.SendDelay > 0 {
            time.Sleep(e.SendDelay)
        }
        sent++
        if err := e.Sender.SendReminder(ctx, kind, b); err != nil {
            e.Log.Error("reminder send failed",
                "booking_id", b.ID, "kind", kind, "error", err)
            res.Errors = append(res.Errors, fmt.Sprintf("booking %d: %v", b.ID, err))
            continue
        }
        if kind == Kind24Hour {
            res.Sent24h++
        } else {
            res.Sent1h++
        }
    }
    return res
}
