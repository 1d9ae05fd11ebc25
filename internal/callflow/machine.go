package callflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/compose"
	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/internal/escalate"
	"github.com/brightbeginnings/daycare-voice-service/internal/intent"
	"github.com/brightbeginnings/daycare-voice-service/internal/interactionlog"
	"github.com/brightbeginnings/daycare-voice-service/internal/language"
	"github.com/brightbeginnings/daycare-voice-service/internal/session"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// SMSSender delivers the out-of-band follow-up text after a voice turn.
type SMSSender interface {
	Send(to, body string) error
}

// LeadRecorder captures an enrollment lead for later owner follow-up.
type LeadRecorder interface {
	RecordLead(ctx context.Context, phone, parentName string) error
}

// Notifier delivers a best-effort operator notification.
type Notifier interface {
	Notify(subject, body string)
}

// speechHints biases the provider's speech recognition toward the vocabulary
// callers actually use.
const speechHints = "fees, hours, tour, visit, enrollment, urgent, manager"

// Options tune the shape of the call flow without touching its semantics.
// Two deployments share this machine: the follow-up variant keeps the caller
// on the line for a second question, the short variant says goodbye after the
// first answer.
type Options struct {
	PublicBaseURL      string
	OfferFollowUp      bool
	SpeechMode         SpeechMode
	Audio              AudioResolver
	GreetingTimeoutSec int
	FollowUpTimeoutSec int
	DialTimeoutSec     int
	VoicemailMaxSec    int
}

func (o *Options) applyDefaults() {
	if o.SpeechMode == "" {
		o.SpeechMode = SpeechModeSay
	}
	if o.GreetingTimeoutSec <= 0 {
		o.GreetingTimeoutSec = 3
	}
	if o.FollowUpTimeoutSec <= 0 {
		o.FollowUpTimeoutSec = 10
	}
	if o.DialTimeoutSec <= 0 {
		o.DialTimeoutSec = 20
	}
	if o.VoicemailMaxSec <= 0 {
		o.VoicemailMaxSec = 120
	}
}

// Machine drives a phone call through its stages and renders the TwiML for
// each webhook event. Every caller turn detects language and intent fresh,
// produces exactly one reply and exactly one interaction log entry.
type Machine struct {
	profile    *config.BusinessProfile
	detector   *language.Detector
	classifier *intent.Classifier
	composer   *compose.Composer
	escalator  *escalate.Manager
	ilog       *interactionlog.Logger
	notifier   Notifier
	sms        SMSSender
	leads      LeadRecorder
	sessions   session.Store
	opts       Options
}

// NewMachine wires the call flow. notifier, sms and leads may be nil; the
// corresponding side effects are skipped.
func NewMachine(
	profile *config.BusinessProfile,
	detector *language.Detector,
	classifier *intent.Classifier,
	composer *compose.Composer,
	escalator *escalate.Manager,
	ilog *interactionlog.Logger,
	notifier Notifier,
	sms SMSSender,
	leads LeadRecorder,
	sessions session.Store,
	opts Options,
) *Machine {
	opts.applyDefaults()
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}
	return &Machine{
		profile:    profile,
		detector:   detector,
		classifier: classifier,
		composer:   composer,
		escalator:  escalator,
		ilog:       ilog,
		notifier:   notifier,
		sms:        sms,
		leads:      leads,
		sessions:   sessions,
		opts:       opts,
	}
}

// Greeting answers a new inbound call: welcome line, then listen for the
// caller's question. Silence falls through to voicemail.
func (m *Machine) Greeting(ctx context.Context, callID string) (string, error) {
	m.saveState(ctx, callID, &session.State{
		Stage:     domain.StageListening,
		Language:  domain.LanguageEnglish,
		StartedAt: time.Now(),
	})

	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        m.action("/voice/handle"),
		Method:        "POST",
		Timeout:       strconv.Itoa(m.opts.GreetingTimeoutSec),
		SpeechTimeout: "auto",
		Hints:         speechHints,
		InnerElements: []twiml.Element{
			m.speak("How can I help you today? You can ask about fees, hours, openings, or booking a tour.", domain.LanguageEnglish),
		},
	}

	return render(
		m.speak(fmt.Sprintf("Hi! Thanks for calling %s.", m.profile.Name), domain.LanguageEnglish),
		gather,
		&twiml.VoicePause{Length: "1"},
		m.speak("Sorry, I didn't catch that.", domain.LanguageEnglish),
		&twiml.VoiceRedirect{Url: m.action("/voice/voicemail"), Method: "POST"},
	)
}

// HandleSpeech processes the caller's first utterance: classify, answer or
// escalate, log, then either offer a follow-up turn or say goodbye.
func (m *Machine) HandleSpeech(ctx context.Context, callID, from, speech string) (string, error) {
	if strings.TrimSpace(speech) == "" {
		return m.Voicemail(ctx, callID)
	}

	lang := m.detector.Detect(speech)
	resolved := m.classifier.Classify(speech)
	turn := domain.Turn{Text: speech, Channel: domain.ChannelVoice, CallerID: from}

	if m.escalator.ShouldEscalate(resolved) {
		return m.transferToOwner(ctx, callID, turn, resolved, lang)
	}

	m.saveState(ctx, callID, &session.State{Stage: domain.StageResponding, Language: lang})

	reply, ok := m.composer.Compose(compose.SetVoice, resolved, lang)
	if !ok {
		reply = m.composer.ComposeAI(ctx, speech, lang)
	}

	m.record(ctx, turn, resolved, lang, reply)
	m.notifySummary(turn, resolved, lang, reply)
	m.sendFollowUpSMS(from, resolved)
	m.captureLead(ctx, from, resolved)

	elements := []twiml.Element{
		m.speak(fillerLine(lang), lang),
		m.speak(reply, lang),
	}

	if m.opts.OfferFollowUp {
		m.saveState(ctx, callID, &session.State{Stage: domain.StageFollowUp, Language: lang})
		elements = append(elements,
			&twiml.VoiceGather{
				Input:         "speech",
				Action:        m.action("/voice/final"),
				Method:        "POST",
				Timeout:       strconv.Itoa(m.opts.FollowUpTimeoutSec),
				SpeechTimeout: "auto",
				InnerElements: []twiml.Element{m.speak(followUpQuestion(lang), lang)},
			},
			&twiml.VoicePause{Length: "1"},
		)
	} else {
		m.endSession(ctx, callID)
	}

	elements = append(elements, m.speak(goodbyeLine(lang), lang), &twiml.VoiceHangup{})
	return render(elements...)
}

// FollowUp processes the optional second question. It always ends the call.
func (m *Machine) FollowUp(ctx context.Context, callID, from, speech string) (string, error) {
	lang := m.lastLanguage(ctx, callID)
	defer m.endSession(ctx, callID)

	if strings.TrimSpace(speech) == "" {
		return render(m.speak(goodbyeLine(lang), lang), &twiml.VoiceHangup{})
	}

	lang = m.detector.Detect(speech)
	reply := m.composer.ComposeAI(ctx, speech, lang)

	turn := domain.Turn{Text: speech, Channel: domain.ChannelVoice, CallerID: from}
	m.record(ctx, turn, domain.IntentFollowUp, lang, reply)
	if m.notifier != nil {
		m.notifier.Notify(
			fmt.Sprintf("Call follow-up (%s)", from),
			fmt.Sprintf("Said: %s\nReply: %s", speech, reply),
		)
	}

	return render(
		m.speak(reply, lang),
		m.speak(goodbyeLine(lang), lang),
		&twiml.VoiceHangup{},
	)
}

// transferToOwner renders the human handoff. The notification and log entry
// happen before the dial so they survive a failed transfer.
func (m *Machine) transferToOwner(ctx context.Context, callID string, turn domain.Turn, resolved domain.Intent, lang domain.Language) (string, error) {
	m.escalator.NotifyHandoff(turn, resolved)
	m.record(ctx, turn, resolved, lang, domain.ForwardedReply)
	m.saveState(ctx, callID, &session.State{Stage: domain.StageEscalated, Language: lang})

	owner := m.escalator.OwnerNumber()
	if owner == "" {
		logger.Base().Warn("escalation requested but no owner number configured",
			zap.String("caller", turn.CallerID))
		m.endSession(ctx, callID)
		return render(
			m.speak(transferFailedLine(lang), lang),
			m.speak(goodbyeLine(lang), lang),
			&twiml.VoiceHangup{},
		)
	}

	return render(
		m.speak(m.escalator.HandoffLine(lang), lang),
		&twiml.VoiceDial{
			Timeout:       strconv.Itoa(m.opts.DialTimeoutSec),
			Action:        m.action("/voice/transfer-complete"),
			Method:        "POST",
			InnerElements: []twiml.Element{&twiml.VoiceNumber{PhoneNumber: owner}},
		},
	)
}

// TransferResult handles the dial outcome callback. An unanswered transfer
// gets an apology instead of dead air.
func (m *Machine) TransferResult(ctx context.Context, callID, dialStatus string) (string, error) {
	lang := m.lastLanguage(ctx, callID)
	m.endSession(ctx, callID)

	if dialStatus == "completed" {
		return render(&twiml.VoiceHangup{})
	}

	logger.Base().Info("owner transfer did not complete",
		zap.String("callId", callID),
		zap.String("dialStatus", dialStatus))
	return render(
		m.speak(transferFailedLine(lang), lang),
		m.speak(goodbyeLine(lang), lang),
		&twiml.VoiceHangup{},
	)
}

// Voicemail invites the caller to leave a recorded message. The transcription
// arrives later on its own callback.
func (m *Machine) Voicemail(ctx context.Context, callID string) (string, error) {
	m.saveState(ctx, callID, &session.State{Stage: domain.StageVoicemail, Language: domain.LanguageEnglish})

	return render(
		m.speak("I didn't hear you. Please leave your message after the beep.", domain.LanguageEnglish),
		&twiml.VoiceRecord{
			MaxLength:          strconv.Itoa(m.opts.VoicemailMaxSec),
			PlayBeep:           "true",
			Transcribe:         "true",
			TranscribeCallback: m.action("/voice/voicemail-transcribed"),
		},
		m.speak("Thank you. Goodbye.", domain.LanguageEnglish),
		&twiml.VoiceHangup{},
	)
}

// VoicemailTranscribed records the transcription callback. No TwiML is
// produced; the call is long gone.
func (m *Machine) VoicemailTranscribed(ctx context.Context, callID, from, transcript string) {
	if strings.TrimSpace(transcript) == "" {
		transcript = "(no transcript)"
	}
	lang := m.detector.Detect(transcript)
	turn := domain.Turn{Text: transcript, Channel: domain.ChannelVoice, CallerID: from}
	m.record(ctx, turn, domain.IntentVoicemail, lang, domain.VoicemailReply)

	if m.notifier != nil {
		m.notifier.Notify(fmt.Sprintf("New voicemail from %s", from), transcript)
	}
	m.endSession(ctx, callID)
}

func (m *Machine) record(ctx context.Context, turn domain.Turn, resolved domain.Intent, lang domain.Language, reply string) {
	name := turn.CallerName
	if name == "" {
		// Telephony webhooks carry no display name; the log still gets a
		// stable name column.
		name = "Caller"
	}
	m.ilog.Record(ctx, domain.InteractionEntry{
		Name:     name,
		Phone:    turn.CallerID,
		Message:  turn.Text,
		Intent:   resolved,
		Language: lang,
		Channel:  domain.ChannelVoice,
		Reply:    reply,
	})
}

func (m *Machine) notifySummary(turn domain.Turn, resolved domain.Intent, lang domain.Language, reply string) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(
		fmt.Sprintf("Call summary (%s) – %s", turn.CallerID, resolved),
		fmt.Sprintf("Caller: %s\nLanguage: %s\nIntent: %s\n\nSaid: %s\nAI Reply: %s",
			turn.CallerID, lang, resolved, turn.Text, reply),
	)
}

// sendFollowUpSMS texts the caller after every answered turn: the booking
// link for tours, the fee list for fees, the website line otherwise.
func (m *Machine) sendFollowUpSMS(from string, resolved domain.Intent) {
	if m.sms == nil || from == "" {
		return
	}

	var body string
	switch {
	case resolved == domain.IntentTour && m.profile.TourLink != "":
		body = fmt.Sprintf("Thanks for your interest in a tour at %s! Here's the link: %s", m.profile.Name, m.profile.TourLink)
	case resolved == domain.IntentFees:
		fees := m.profile.FeesLine()
		if fees == "" {
			fees = "Contact us for details."
		}
		body = fmt.Sprintf("Fees for %s: %s", m.profile.Name, fees)
	default:
		body = strings.TrimSpace(fmt.Sprintf("Thanks for calling %s! More info: %s", m.profile.Name, m.profile.Website))
	}

	if err := m.sms.Send(from, body); err != nil {
		logger.Base().Warn("follow-up sms failed",
			zap.String("to", from),
			zap.Error(err))
	}
}

func (m *Machine) captureLead(ctx context.Context, from string, resolved domain.Intent) {
	if m.leads == nil || resolved != domain.IntentOpenings {
		return
	}
	if err := m.leads.RecordLead(ctx, from, ""); err != nil {
		logger.Base().Warn("lead capture failed",
			zap.String("phone", from),
			zap.Error(err))
	}
}

func (m *Machine) saveState(ctx context.Context, callID string, state *session.State) {
	if state.StartedAt.IsZero() {
		if prev, err := m.sessions.Get(ctx, callID); err == nil && prev != nil {
			state.StartedAt = prev.StartedAt
		} else {
			state.StartedAt = time.Now()
		}
	}
	if err := m.sessions.Put(ctx, callID, state); err != nil {
		logger.Base().Warn("failed to save call session",
			zap.String("callId", callID),
			zap.Error(err))
	}
}

func (m *Machine) lastLanguage(ctx context.Context, callID string) domain.Language {
	state, err := m.sessions.Get(ctx, callID)
	if err != nil || state == nil {
		return domain.LanguageEnglish
	}
	return state.Language
}

func (m *Machine) endSession(ctx context.Context, callID string) {
	if err := m.sessions.Delete(ctx, callID); err != nil {
		logger.Base().Warn("failed to clear call session",
			zap.String("callId", callID),
			zap.Error(err))
	}
}

// action builds the absolute webhook URL when a public base is configured,
// otherwise leaves the path relative for the provider to resolve.
func (m *Machine) action(path string) string {
	if m.opts.PublicBaseURL == "" {
		return path
	}
	return strings.TrimRight(m.opts.PublicBaseURL, "/") + path
}

func fillerLine(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Un instant, je vérifie."
	}
	return "One moment while I check that."
}

func followUpQuestion(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Puis-je vous aider avec autre chose ?"
	}
	return "Can I help with anything else?"
}

func goodbyeLine(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Merci d'avoir appelé. Au revoir !"
	}
	return "Thanks for calling. Goodbye!"
}

func transferFailedLine(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Désolée, notre responsable n'est pas disponible pour le moment. Veuillez rappeler plus tard."
	}
	return "Sorry, our manager is not available right now. Please call back later."
}
