package escalate

import (
	"fmt"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// Notifier delivers a best-effort operator notification.
type Notifier interface {
	Notify(subject, body string)
}

// Manager decides whether an intent requires immediate human handoff and
// owns the owner-notification side of an escalation. The telephony transfer
// itself is rendered by the call flow; chat escalations degrade to
// notification plus logging.
type Manager struct {
	notifier    Notifier
	ownerNumber string
}

// NewManager creates an escalation manager. ownerNumber is the human
// fallback line dialed on voice escalations.
func NewManager(notifier Notifier, ownerNumber string) *Manager {
	return &Manager{notifier: notifier, ownerNumber: ownerNumber}
}

// ShouldEscalate reports whether the intent short-circuits the composer and
// routes to a human.
func (m *Manager) ShouldEscalate(intent domain.Intent) bool {
	return intent == domain.IntentUrgent || intent == domain.IntentManager
}

// OwnerNumber returns the human fallback line.
func (m *Manager) OwnerNumber() string {
	return m.ownerNumber
}

// HandoffLine is the short "connecting you now" sentence spoken or sent
// before the handoff.
func (m *Manager) HandoffLine(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Je vous mets en relation avec notre responsable."
	}
	return "I'll connect you to our manager now."
}

// NotifyHandoff emails the operator about an escalated turn: who called,
// what they said, and the intent that triggered the handoff.
func (m *Manager) NotifyHandoff(turn domain.Turn, intent domain.Intent) {
	if m.notifier == nil {
		return
	}
	subject := fmt.Sprintf("URGENT: Caller needs a manager (%s)", turn.CallerID)
	body := fmt.Sprintf("Caller: %s\nMessage: %s\nIntent: %s", turn.CallerID, turn.Text, intent)
	m.notifier.Notify(subject, body)
}
