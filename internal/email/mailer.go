// Package email delivers the studio's transactional mail over SMTP:
// appointment reminders to clients and contact/booking notifications to
// the studio inbox.
package email

import (
    "context"
    "fmt"

    "gopkg.in/gomail.v2"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
)

// Config holds SMTP connection settings. The from address must be
// accepted by the provider (verified sender).
type Config struct {
    Host        string
    Port        int
    Username    string
    Password    string
    FromAddress string
    FromName    string
}

// Studio carries the studio details rendered into every email.
// AdminEmails receives contact and new-booking notifications; reminders
// go to the booking's client address.
type Studio struct {
    Name        string
    Address     string
    Phone       string
    Website     string
    AdminEmails []string
}

// Mailer sends HTML email through a single gomail dialer. It satisfies
// reminder.Sender.
type Mailer struct {
    cfg    Config
    studio Studio
    dialer *gomail.Dialer
}

// NewMailer builds a Mailer from SMTP and studio settings.
func NewMailer(cfg Config, studio Studio) *Mailer {
    return &Mailer{
        cfg:    cfg,
        studio: studio,
        dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
    }
}

// SendReminder emails the client of a booking. kind selects between the
// 24-hour and 1-hour wording (reminder.Kind24Hour / reminder.Kind1Hour).
func (m *Mailer) SendReminder(ctx context.Context, kind string, b model.Booking) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    if b.Email == "" {
        return fmt.Errorf("booking %d has no client email", b.ID)
    }
    var subject string
    switch kind {
    case reminder.Kind1Hour:
        subject = fmt.Sprintf("See you soon! Your %s appointment is in about an hour", m.studio.Name)
    case reminder.Kind24Hour:
        subject = fmt.Sprintf("Reminder: your %s appointment is tomorrow", m.studio.Name)
    default:
        return fmt.Errorf("unknown reminder kind %q", kind)
    }
    html, plain := m.reminderBody(kind, b)
    return m.send([]string{b.Email}, subject, html, plain)
}

// SendContactNotification emails the studio inbox about a new contact
// form message.
func (m *Mailer) SendContactNotification(ctx context.Context, msg model.ContactMessage) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    if len(m.studio.AdminEmails) == 0 {
        return fmt.Errorf("no admin email configured")
    }
    subject := fmt.Sprintf("New contact message: %s", msg.Subject)
    html, plain := m.contactBody(msg)
    return m.send(m.studio.AdminEmails, subject, html, plain)
}

// SendBookingNotification emails the studio inbox about a new booking
// made through the public site.
func (m *Mailer) SendBookingNotification(ctx context.Context, b model.Booking) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    if len(m.studio.AdminEmails) == 0 {
        return fmt.Errorf("no admin email configured")
    }
    subject := fmt.Sprintf("New booking: %s on %s at %s", b.ServiceName, b.AppointmentDate, b.AppointmentTime)
    html, plain := m.bookingBody(b)
    return m.send(m.studio.AdminEmails, subject, html, plain)
}

func (m *Mailer) send(to []string, subject, htmlBody, plainBody string) error {
    msg := gomail.NewMessage()
    msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
    msg.SetHeader("To", to...)
    msg.SetHeader("Subject", subject)
    msg.SetBody("text/plain", plainBody)
    msg.AddAlternative("text/html", htmlBody)
    return m.dialer.DialAndSend(msg)
}
