package email

import (
    "fmt"
    "strings"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
)

func (m *Mailer) reminderBody(kind string, b model.Booking) (html, plain string) {
    when := "tomorrow"
    if kind == reminder.Kind1Hour {
        when = "in about an hour"
    }
    addOns := addOnLines(b.SelectedAddOns)
    html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Your appointment is %s</h2>
			<p>Hi %s,</p>
			<p>This is a friendly reminder of your appointment at %s:</p>
			<ul>
				<li><strong>Service:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>%s
			</ul>
			<p>We are located at %s. If you need to reschedule, please call us at %s.</p>
			<p>See you soon!<br>%s</p>
		</body>
		</html>
	`, when, b.FirstName, m.studio.Name,
        b.ServiceName, b.AppointmentDate, b.AppointmentTime, addOnsHTML(b.SelectedAddOns),
        m.studio.Address, m.studio.Phone, m.studio.Name)

    plain = fmt.Sprintf(`Hi %s,

This is a friendly reminder of your appointment at %s %s:

Service: %s
Date: %s
Time: %s
%s
We are located at %s. If you need to reschedule, please call us at %s.

See you soon!
%s
`, b.FirstName, m.studio.Name, when,
        b.ServiceName, b.AppointmentDate, b.AppointmentTime, addOns,
        m.studio.Address, m.studio.Phone, m.studio.Name)
    return html, plain
}

func (m *Mailer) contactBody(msg model.ContactMessage) (html, plain string) {
    html = fmt.Sprintf(`
		<html>
		<body>
			<h2>New contact message</h2>
			<p><strong>From:</strong> %s %s (%s)</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Inquiry type:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<hr>
			<p>%s</p>
		</body>
		</html>
	`, msg.FirstName, msg.LastName, msg.Email, orDash(msg.Phone),
        msg.InquiryType, msg.Subject, msg.Message)

    plain = fmt.Sprintf(`New contact message

From: %s %s (%s)
Phone: %s
Inquiry type: %s
Subject: %s

%s
`, msg.FirstName, msg.LastName, msg.Email, orDash(msg.Phone),
        msg.InquiryType, msg.Subject, msg.Message)
    return html, plain
}

func (m *Mailer) bookingBody(b model.Booking) (html, plain string) {
    html = fmt.Sprintf(`
		<html>
		<body>
			<h2>New booking received</h2>
			<p><strong>Client:</strong> %s (%s, %s)</p>
			<ul>
				<li><strong>Service:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
				<li><strong>Confirmation code:</strong> %s</li>%s
			</ul>
			<p>%s</p>
		</body>
		</html>
	`, b.ClientName(), b.Email, b.Phone,
        b.ServiceName, b.AppointmentDate, b.AppointmentTime, b.ConfirmationCode,
        addOnsHTML(b.SelectedAddOns), orDash(b.Notes))

    plain = fmt.Sprintf(`New booking received

Client: %s (%s, %s)
Service: %s
Date: %s
Time: %s
Confirmation code: %s
%s
Notes: %s
`, b.ClientName(), b.Email, b.Phone,
        b.ServiceName, b.AppointmentDate, b.AppointmentTime, b.ConfirmationCode,
        addOnLines(b.SelectedAddOns), orDash(b.Notes))
    return html, plain
}

func addOnsHTML(addOns []model.BookingAddOn) string {
    if len(addOns) == 0 {
        return ""
    }
    names := make([]string, 0, len(addOns))
    for _, a := range addOns {
        names = append(names, a.Name)
    }
    return fmt.Sprintf("\n\t\t\t\t<li><strong>Add-ons:</strong> %s</li>", strings.Join(names, ", "))
}

func addOnLines(addOns []model.BookingAddOn) string {
    if len(addOns) == 0 {
        return ""
    }
    names := make([]string, 0, len(addOns))
    for _, a := range addOns {
        names = append(names, a.Name)
    }
    return "Add-ons: " + strings.Join(names, ", ") + "\n"
}

func orDash(s string) string {
    if strings.TrimSpace(s) == "" {
        return "-"
    }
    return s
}
