package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"sportsfest/internal/config"
)

// Confirmation carries everything the team leader's email mentions.
type Confirmation struct {
	EventTitle string
	SerialNo   int
	PaymentID  string
}

// Mailer sends best-effort confirmation emails over SMTP. Registrations are
// already persisted by the time a mail is sent, so a send failure is reported
// in the response but never fails the request.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.SMTP) *Mailer {
	if cfg.Host == "" || cfg.From == "" {
		return &Mailer{}
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Enabled reports whether SMTP is configured; when false, sends are skipped.
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

func (m *Mailer) SendConfirmation(to string, c Confirmation) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Registration confirmed: %s", c.EventTitle))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your registration for %s is confirmed.\n\n"+
			"Registration number: %d\n"+
			"Payment ID: %s\n\n"+
			"Keep the payment ID handy for any queries with the organisers.\n",
		c.EventTitle, c.SerialNo, c.PaymentID,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}
