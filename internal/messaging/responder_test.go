package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightbeginnings/daycare-voice-service/internal/compose"
	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/internal/escalate"
	"github.com/brightbeginnings/daycare-voice-service/internal/intent"
	"github.com/brightbeginnings/daycare-voice-service/internal/interactionlog"
	"github.com/brightbeginnings/daycare-voice-service/internal/language"
)

type stubCompleter struct {
	reply string
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, nil
}

type stubNotifier struct {
	subjects []string
}

func (n *stubNotifier) Notify(subject, _ string) {
	n.subjects = append(n.subjects, subject)
}

type stubLeads struct {
	phones []string
	names  []string
}

func (s *stubLeads) RecordLead(_ context.Context, phone, parentName string) error {
	s.phones = append(s.phones, phone)
	s.names = append(s.names, parentName)
	return nil
}

type stubSink struct {
	entries []domain.InteractionEntry
}

func (s *stubSink) Append(_ context.Context, entry domain.InteractionEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

type fixture struct {
	responder *Responder
	completer *stubCompleter
	notifier  *stubNotifier
	leads     *stubLeads
	sink      *stubSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	profile := &config.BusinessProfile{
		Name:     "Sunny Side Daycare",
		Hours:    "Monday to Friday, 7 AM to 6 PM",
		Meals:    "Hot lunch and two snacks daily.",
		Fees:     map[string]string{"Toddler": "$1,000/month"},
		TourLink: "https://sunnyside.example/tour",
	}

	f := &fixture{
		completer: &stubCompleter{reply: "Happy to help with that!"},
		notifier:  &stubNotifier{},
		leads:     &stubLeads{},
		sink:      &stubSink{},
	}

	f.responder = NewResponder(
		language.NewDetector(),
		intent.NewClassifier(intent.DefaultRules()),
		compose.NewComposer(profile, f.completer),
		escalate.NewManager(f.notifier, "+15550001111"),
		interactionlog.New(f.sink, nil),
		f.leads,
	)
	return f
}

func turn(text string) domain.Turn {
	return domain.Turn{
		Text:       text,
		Channel:    domain.ChannelWhatsApp,
		CallerID:   "whatsapp:+15557654321",
		CallerName: "Jordan",
	}
}

func TestReplyTemplatedHours(t *testing.T) {
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("what time do you open?"))

	require.Contains(t, reply, "Sunny Side Daycare")
	require.Contains(t, reply, "Monday to Friday, 7 AM to 6 PM")
	require.Zero(t, f.completer.calls)

	require.Len(t, f.sink.entries, 1)
	entry := f.sink.entries[0]
	require.Equal(t, domain.IntentHours, entry.Intent)
	require.Equal(t, domain.ChannelWhatsApp, entry.Channel)
	require.Equal(t, "Jordan", entry.Name)
	require.Equal(t, reply, entry.Reply)
}

func TestReplyTourLink(t *testing.T) {
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("can we come visit?"))
	require.Contains(t, reply, "https://sunnyside.example/tour")
}

func TestReplyFrenchRoutesToAI(t *testing.T) {
	// The FAQ table is English-only; French turns use the AI fallback.
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("Bonjour, quels sont vos horaires ?"))
	require.Equal(t, "Happy to help with that!", reply)
	require.Equal(t, 1, f.completer.calls)
	require.Equal(t, domain.LanguageFrench, f.sink.entries[0].Language)
}

func TestReplyFrenchHoursEndToEnd(t *testing.T) {
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("Bonjour, quelles sont les heures d'ouverture?"))

	// Hours has no French template, so the reply comes from the AI path.
	require.Equal(t, "Happy to help with that!", reply)
	require.Equal(t, 1, f.completer.calls)

	require.Len(t, f.sink.entries, 1)
	require.Equal(t, domain.IntentHours, f.sink.entries[0].Intent)
	require.Equal(t, domain.LanguageFrench, f.sink.entries[0].Language)
}

func TestReplyGeneralRoutesToAI(t *testing.T) {
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("do you have a waitlist for twins?"))
	require.Equal(t, "Happy to help with that!", reply)
	require.Equal(t, 1, f.completer.calls)
}

func TestReplyUrgentEscalates(t *testing.T) {
	f := newFixture(t)

	reply := f.responder.Reply(context.Background(), turn("This is an emergency, I need the manager now"))

	require.Equal(t, "I'll connect you to our manager now.", reply)
	require.Zero(t, f.completer.calls)
	require.NotEmpty(t, f.notifier.subjects)

	require.Len(t, f.sink.entries, 1)
	require.Equal(t, domain.IntentUrgent, f.sink.entries[0].Intent)
	require.Equal(t, domain.ForwardedReply, f.sink.entries[0].Reply)
}

func TestReplyOpeningsCapturesLead(t *testing.T) {
	f := newFixture(t)

	f.responder.Reply(context.Background(), turn("do you have a seat for my daughter?"))

	require.Len(t, f.leads.phones, 1)
	require.Equal(t, "whatsapp:+15557654321", f.leads.phones[0])
	require.Equal(t, "Jordan", f.leads.names[0])
}

func TestReplyAlwaysLogsExactlyOnce(t *testing.T) {
	f := newFixture(t)

	f.responder.Reply(context.Background(), turn("hello!"))
	f.responder.Reply(context.Background(), turn("I need a human"))
	f.responder.Reply(context.Background(), turn("what are your fees"))

	require.Len(t, f.sink.entries, 3)
}
