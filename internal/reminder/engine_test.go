package reminder

import (
    "context"
    "errors"
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

func TestParseClockTime(t *testing.T) {
    cases := []struct {
        in     string
        hour   int
        minute int
    }{
        {"12:00 AM", 0, 0},
        {"12:30 AM", 0, 30},
        {"1:00 AM", 1, 0},
        {"11:59 AM", 11, 59},
        {"12:00 PM", 12, 0},
        {"12:45 PM", 12, 45},
        {"1:00 PM", 13, 0},
        {"2:00 PM", 14, 0},
        {"11:59 PM", 23, 59},
        {"2:00 pm", 14, 0}, // modifier is case-insensitive
    }
    for _, tc := range cases {
        t.Run(tc.in, func(t *testing.T) {
            h, m, err := ParseClockTime(tc.in)
            require.NoError(t, err)
            assert.Equal(t, tc.hour, h)
            assert.Equal(t, tc.minute, m)
        })
    }
}

func TestParseClockTimeRejectsMalformed(t *testing.T) {
    bad := []string{
        "",
        "2:00",      // no modifier
        "2 PM",      // no minutes
        "14:00 PM",  // 24-hour value with modifier
        "0:30 AM",   // hour below 1
        "2:60 PM",   // minute out of range
        "2:00 XX",   // unknown modifier
        "2:00 PM 1", // trailing garbage
    }
    for _, in := range bad {
        t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
            _, _, err := ParseClockTime(in)
            assert.Error(t, err)
        })
    }
}

func TestClassify(t *testing.T) {
    now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

    t.Run("exactly 24 hours out", func(t *testing.T) {
        w, err := Classify("2024-01-02", "10:00 AM", now)
        require.NoError(t, err)
        assert.InDelta(t, 24.0, w.TotalHours, 1e-9)
        assert.True(t, w.Within24Hours)
        assert.False(t, w.Within1Hour)
    })

    t.Run("exactly 1 hour out", func(t *testing.T) {
        w, err := Classify("2024-01-01", "11:00 AM", now)
        require.NoError(t, err)
        assert.InDelta(t, 1.0, w.TotalHours, 1e-9)
        assert.True(t, w.Within24Hours)
        assert.True(t, w.Within1Hour)
    })

    t.Run("just over one hour is outside the strict check", func(t *testing.T) {
        // The 0.75..1.25 tolerance band belongs to the batch job only;
        // the interactive check stays a plain <= 1.
        w, err := Classify("2024-01-01", "11:05 AM", now)
        require.NoError(t, err)
        assert.True(t, w.Within24Hours)
        assert.False(t, w.Within1Hour)
    })

    t.Run("beyond 24 hours", func(t *testing.T) {
        w, err := Classify("2024-01-02", "11:00 AM", now)
        require.NoError(t, err)
        assert.InDelta(t, 25.0, w.TotalHours, 1e-9)
        assert.False(t, w.Within24Hours)
        assert.False(t, w.Within1Hour)
    })

    t.Run("past appointments keep both flags set", func(t *testing.T) {
        w, err := Classify("2024-01-01", "9:00 AM", now)
        require.NoError(t, err)
        assert.InDelta(t, -1.0, w.TotalHours, 1e-9)
        assert.True(t, w.Within24Hours)
        assert.True(t, w.Within1Hour)
    })

    t.Run("malformed time errors", func(t *testing.T) {
        _, err := Classify("2024-01-01", "25:00", now)
        assert.Error(t, err)
    })

    t.Run("malformed date errors", func(t *testing.T) {
        _, err := Classify("01/02/2024", "10:00 AM", now)
        assert.Error(t, err)
    })
}

func TestLabelFor(t *testing.T) {
    now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

    cases := []struct {
        name     string
        date     string
        clock    string
        text     string
        disabled bool
        variant  string
    }{
        {"past", "2024-01-01", "9:00 AM", "Appointment Passed", true, VariantNeutral},
        {"inside one hour", "2024-01-01", "10:30 AM", "Send 1-Hour Reminder", false, VariantEmphasis},
        {"inside 24 hours", "2024-01-01", "8:00 PM", "Send 24-Hour Reminder", false, VariantEmphasis},
        {"far out rounds up", "2024-01-02", "11:30 AM", "Send Reminder (26h)", false, VariantNeutral},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            lbl, err := LabelFor(tc.date, tc.clock, now)
            require.NoError(t, err)
            assert.Equal(t, tc.text, lbl.Text)
            assert.Equal(t, tc.disabled, lbl.Disabled)
            assert.Equal(t, tc.variant, lbl.Variant)
        })
    }

    _, err := LabelFor("2024-01-01", "nope", now)
    assert.Error(t, err)
}

type sentCall struct {
    kind string
    id   uint64
}

type fakeSender struct {
    calls  []sentCall
    failID uint64
}

func (f *fakeSender) SendReminder(_ context.Context, kind string, b model.Booking) error {
    f.calls = append(f.calls, sentCall{kind: kind, id: b.ID})
    if f.failID != 0 && b.ID == f.failID {
        return errors.New("smtp rejected")
    }
    return nil
}

func booking(id uint64, status, date, clock string) model.Booking {
    return model.Booking{
        ID:              id,
        Email:           fmt.Sprintf("client%d@example.com", id),
        Status:          status,
        AppointmentDate: date,
        AppointmentTime: clock,
    }
}

func TestSelectDueBookings(t *testing.T) {
    now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

    t.Run("selects tomorrow and the one-hour band", func(t *testing.T) {
        s := &fakeSender{}
        e := NewEngine(s, 0, nil)

        res := e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusConfirmed, "2024-01-02", "3:00 PM"),  // tomorrow: 24h
            booking(2, model.BookingStatusConfirmed, "2024-01-01", "11:00 AM"), // exactly 1h
            booking(3, model.BookingStatusConfirmed, "2024-01-01", "11:10 AM"), // 1.17h, inside band
            booking(4, model.BookingStatusConfirmed, "2024-01-01", "11:30 AM"), // 1.5h, outside band
            booking(5, model.BookingStatusConfirmed, "2024-01-01", "10:40 AM"), // 0.67h, outside band
            booking(6, model.BookingStatusConfirmed, "2024-01-05", "9:00 AM"),  // other date
        }, now)

        assert.Equal(t, 1, res.Sent24h)
        assert.Equal(t, 2, res.Sent1h)
        assert.Empty(t, res.Errors)
        require.Len(t, s.calls, 3)
        assert.Equal(t, sentCall{Kind24Hour, 1}, s.calls[0])
        assert.Equal(t, sentCall{Kind1Hour, 2}, s.calls[1])
        assert.Equal(t, sentCall{Kind1Hour, 3}, s.calls[2])
    })

    t.Run("only confirmed bookings qualify", func(t *testing.T) {
        s := &fakeSender{}
        e := NewEngine(s, 0, nil)

        res := e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusCancelled, "2024-01-02", "3:00 PM"),
            booking(2, model.BookingStatusPending, "2024-01-02", "3:00 PM"),
            booking(3, model.BookingStatusCompleted, "2024-01-01", "11:00 AM"),
        }, now)

        assert.Zero(t, res.Sent24h)
        assert.Zero(t, res.Sent1h)
        assert.Empty(t, res.Errors)
        assert.Empty(t, s.calls)
    })

    t.Run("one failing send does not stop the batch", func(t *testing.T) {
        s := &fakeSender{failID: 7}
        e := NewEngine(s, 0, nil)

        res := e.SelectDueBookings(context.Background(), []model.Booking{
            booking(6, model.BookingStatusConfirmed, "2024-01-02", "9:00 AM"),
            booking(7, model.BookingStatusConfirmed, "2024-01-02", "10:00 AM"),
            booking(8, model.BookingStatusConfirmed, "2024-01-02", "11:00 AM"),
        }, now)

        assert.Equal(t, 2, res.Sent24h)
        assert.Zero(t, res.Sent1h)
        require.Len(t, res.Errors, 1)
        assert.Contains(t, res.Errors[0], "booking 7")
        assert.Contains(t, res.Errors[0], "smtp rejected")
        assert.Len(t, s.calls, 3) // the failing booking was still attempted
    })

    t.Run("malformed time fails only that booking", func(t *testing.T) {
        s := &fakeSender{}
        e := NewEngine(s, 0, nil)

        res := e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusConfirmed, "2024-01-01", "whenever"),
            booking(2, model.BookingStatusConfirmed, "2024-01-02", "2:00 PM"),
        }, now)

        assert.Equal(t, 1, res.Sent24h)
        require.Len(t, res.Errors, 1)
        assert.Contains(t, res.Errors[0], "booking 1")
    })

    t.Run("tomorrow is a date match, not a window check", func(t *testing.T) {
        // A booking late tomorrow evening is ~33h out and Classify
        // would say it is outside 24h, but the batch goes by calendar
        // date.
        s := &fakeSender{}
        e := NewEngine(s, 0, nil)

        res := e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusConfirmed, "2024-01-02", "7:00 PM"),
        }, now)

        assert.Equal(t, 1, res.Sent24h)
        assert.Empty(t, res.Errors)
    })

    t.Run("delay sits between sends, not before the first", func(t *testing.T) {
        s := &fakeSender{}
        e := NewEngine(s, 20*time.Millisecond, nil)

        start := time.Now()
        e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusConfirmed, "2024-01-02", "9:00 AM"),
        }, now)
        assert.Less(t, time.Since(start), 20*time.Millisecond)

        start = time.Now()
        e.SelectDueBookings(context.Background(), []model.Booking{
            booking(1, model.BookingStatusConfirmed, "2024-01-02", "9:00 AM"),
            booking(2, model.BookingStatusConfirmed, "2024-01-02", "10:00 AM"),
        }, now)
        assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
    })
}
