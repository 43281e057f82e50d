// Package mail sends transactional e-mail: registration confirmations,
// booking alerts for the front desk, booking confirmations for guests and
// contact-form relays. Delivery is synchronous SMTP; callers decide whether
// a send failure aborts their workflow.
package mail

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/helenus/hotel-api/internal/model"
)

// Mailer is the notification contract used by the account and booking
// workflows. Implementations must be safe for concurrent use.
type Mailer interface {
	// SendVerification mails the e-mail confirmation token to a fresh
	// registrant.
	SendVerification(to, name, token string) error
	// SendBookingAlert notifies the front desk about a new booking.
	SendBookingAlert(guestName, guestEmail string, b *model.Booking) error
	// SendBookingConfirmation confirms a submitted booking to the guest.
	SendBookingConfirmation(to, name string, b *model.Booking) error
	// SendContact relays a contact-form message to the front desk.
	SendContact(name, fromEmail, subject, message string) error
}

// SMTPMailer sends through a plain SMTP transport.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	staff  string
}

// NewSMTPMailer builds a mailer. from doubles as the authenticated SMTP
// user; staff is the address that receives booking alerts and contact mail.
func NewSMTPMailer(host string, port int, user, pass, staff string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		staff:  staff,
	}
}

func (m *SMTPMailer) send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

// SendVerification mails the confirmation token to a fresh registrant.
func (m *SMTPMailer) SendVerification(to, name, token string) error {
	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>Thank you for registering. Please confirm your e-mail address by entering the code below:</p>
<p style="font-size: 20px; letter-spacing: 2px;"><strong>%s</strong></p>
<p>If you did not create an account, you can ignore this message.</p>`, name, token)
	return m.send(to, "Confirm your e-mail address", body)
}

// SendBookingAlert notifies the front desk about a new booking.
func (m *SMTPMailer) SendBookingAlert(guestName, guestEmail string, b *model.Booking) error {
	var rows strings.Builder
	for i, it := range b.Items {
		rows.WriteString(fmt.Sprintf(`<tr>
  <td style="padding: 10px; border: 1px solid #ddd;">%d</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%d</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%d</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
  <td style="padding: 10px; border: 1px solid #ddd;">%s</td>
</tr>
`, i+1, it.RoomTitle, it.RoomType, it.Guests, dollars(it.PricePerNightCents),
			it.TotalNights, dollars(it.SubtotalCents),
			it.CheckIn.Format("Jan 2, 2006"), it.CheckOut.Format("Jan 2, 2006")))
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2 style="color: #333;">New Booking Alert</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Reference:</strong> %s</p>
  <p><strong>Total Booking Amount:</strong> <span style="color: green;">%s</span></p>
  <h3 style="margin-top: 20px;">Booking Details:</h3>
  <table style="width: 100%%; border-collapse: collapse; margin-top: 10px;">
    <thead style="background-color: #f2f2f2;">
      <tr>
        <th style="padding: 10px; border: 1px solid #ddd;">#</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Room</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Type</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Guests</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Price/Night</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Nights</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Subtotal</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Check-in</th>
        <th style="padding: 10px; border: 1px solid #ddd;">Check-out</th>
      </tr>
    </thead>
    <tbody>
%s    </tbody>
  </table>
  <p style="margin-top: 20px;">Please reach out to the customer to finalize details.</p>
</div>`, guestName, guestEmail, b.Reference, dollars(b.TotalAmountCents), rows.String())

	return m.send(m.staff, "New Room Booking Received", body)
}

// SendBookingConfirmation confirms a submitted booking to the guest.
func (m *SMTPMailer) SendBookingConfirmation(to, name string, b *model.Booking) error {
	var lines strings.Builder
	for _, it := range b.Items {
		lines.WriteString(fmt.Sprintf("<li>%s — %s to %s, %d guest(s), %d night(s), %s</li>\n",
			it.RoomTitle, it.CheckIn.Format("Jan 2, 2006"), it.CheckOut.Format("Jan 2, 2006"),
			it.Guests, it.TotalNights, dollars(it.SubtotalCents)))
	}
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Thank you for your booking, %s!</h2>
  <p>We received your reservation request and will be in touch shortly to finalize it.</p>
  <p><strong>Reference:</strong> %s</p>
  <ul>
%s  </ul>
  <p><strong>Total:</strong> %s</p>
  <p>Status: %s</p>
</div>`, name, b.Reference, lines.String(), dollars(b.TotalAmountCents), b.Status)
	return m.send(to, "Your booking request", body)
}

// SendContact relays a contact-form message to the front desk.
func (m *SMTPMailer) SendContact(name, fromEmail, subject, message string) error {
	body := fmt.Sprintf(`<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, name, fromEmail, message)
	return m.send(m.staff, "[Contact Form] "+subject, body)
}

// dollars renders a cent amount as a dollar string for mail bodies.
func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
