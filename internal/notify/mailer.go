package notify

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// Mailer delivers best-effort owner notifications over SMTP. A missing
// configuration disables it; a delivery failure is logged and swallowed so a
// notification can never block a reply.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	to      string
	enabled bool
}

// NewMailer creates a mailer for the fixed operator address.
func NewMailer(host string, port int, user, pass, to string) *Mailer {
	if host == "" || user == "" || to == "" {
		logger.Base().Warn("SMTP not configured, owner notifications disabled")
		return &Mailer{enabled: false}
	}

	return &Mailer{
		dialer:  gomail.NewDialer(host, port, user, pass),
		from:    user,
		to:      to,
		enabled: true,
	}
}

// Notify sends one plain-text email to the operator address. Never returns
// an error; failures are logged.
func (m *Mailer) Notify(subject, body string) {
	if !m.enabled {
		return
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Daycare AI Receptionist")
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Base().Warn("owner notification failed",
			zap.String("subject", subject),
			zap.Error(err))
		return
	}
	logger.Base().Info("owner notification sent", zap.String("subject", subject))
}

// IsEnabled returns whether the mailer is configured.
func (m *Mailer) IsEnabled() bool {
	return m.enabled
}
