package escalate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

type recordingNotifier struct {
	subjects []string
	bodies   []string
}

func (n *recordingNotifier) Notify(subject, body string) {
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
}

func TestShouldEscalate(t *testing.T) {
	m := NewManager(nil, "+15550001111")

	escalating := map[domain.Intent]bool{
		domain.IntentUrgent:   true,
		domain.IntentManager:  true,
		domain.IntentFees:     false,
		domain.IntentHours:    false,
		domain.IntentMeals:    false,
		domain.IntentPrograms: false,
		domain.IntentTour:     false,
		domain.IntentOpenings: false,
		domain.IntentGeneral:  false,
	}
	for intent, want := range escalating {
		require.Equal(t, want, m.ShouldEscalate(intent), "intent: %s", intent)
	}
}

func TestNotifyHandoff(t *testing.T) {
	notifier := &recordingNotifier{}
	m := NewManager(notifier, "+15550001111")

	turn := domain.Turn{
		Text:     "I need to speak to the manager now",
		Channel:  domain.ChannelVoice,
		CallerID: "+15557654321",
	}
	m.NotifyHandoff(turn, domain.IntentManager)

	require.Len(t, notifier.subjects, 1)
	require.Contains(t, notifier.subjects[0], "+15557654321")
	require.Contains(t, notifier.bodies[0], "I need to speak to the manager now")
	require.Contains(t, notifier.bodies[0], "manager")
}

func TestNotifyHandoffNilNotifier(t *testing.T) {
	m := NewManager(nil, "")
	// Must not panic.
	m.NotifyHandoff(domain.Turn{CallerID: "+15557654321"}, domain.IntentUrgent)
}

func TestHandoffLine(t *testing.T) {
	m := NewManager(nil, "")
	require.Equal(t, "I'll connect you to our manager now.", m.HandoffLine(domain.LanguageEnglish))
	require.Equal(t, "Je vous mets en relation avec notre responsable.", m.HandoffLine(domain.LanguageFrench))
}
