package notifications

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/logger"
)

// SMTPMailer implements domain.Mailer over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewSMTPMailer creates a new SMTP mailer. With an empty host the mailer
// runs unconfigured: codes are logged instead of sent and SendCode reports
// failure so callers can fall back.
func NewSMTPMailer(host string, port int, username, password, from string, log *logger.Logger) domain.Mailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &SMTPMailer{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

// SendCode implements domain.Mailer
func (m *SMTPMailer) SendCode(to, code string, purpose domain.Purpose) error {
	subject := fmt.Sprintf("MedVault - OTP for %s", titleCase(string(purpose)))
	body := fmt.Sprintf(
		"Your OTP for %s on MedVault is: %s\n\n"+
			"This OTP is valid for 10 minutes. Please do not share this OTP with anyone.\n\n"+
			"If you did not request this, please ignore this email.\n\n"+
			"Best regards,\nMedVault Team",
		titleCase(string(purpose)), code)

	if m.dialer == nil {
		m.log.WithField("to", to).WithField("purpose", string(purpose)).
			Warn("smtp not configured, code not sent")
		return fmt.Errorf("smtp not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send code email: %w", err)
	}

	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
