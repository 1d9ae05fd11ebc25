package domain

import "time"

// Channel identifies the surface a turn arrived on.
type Channel string

const (
	ChannelVoice    Channel = "voice"    // telephony webhook turns
	ChannelWhatsApp Channel = "whatsapp" // messaging turns
)

// Intent is the closed category a turn's content resolves to.
type Intent string

const (
	IntentFees      Intent = "fees"
	IntentHours     Intent = "hours"
	IntentMeals     Intent = "meals"
	IntentPrograms  Intent = "programs"
	IntentTour      Intent = "tour"
	IntentUrgent    Intent = "urgent"
	IntentManager   Intent = "manager"
	IntentOpenings  Intent = "openings"
	IntentGeneral   Intent = "general"
	IntentFollowUp  Intent = "follow-up"
	IntentVoicemail Intent = "voicemail"
)

// Language is the detected language of a single turn. Detection runs per
// turn; nothing carries over between turns of the same call.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageFrench  Language = "French"
)

// ForwardedReply is the reply literal recorded for escalated turns instead of
// any composed text.
const ForwardedReply = "Forwarded to manager"

// VoicemailReply is the reply literal recorded for transcribed voicemails.
const VoicemailReply = "(voicemail)"

// Turn is one inbound utterance or message. Turns are created per webhook
// event and never persisted as entities, only logged.
type Turn struct {
	Text       string
	Channel    Channel
	CallerID   string // phone number or chat handle
	CallerName string // optional display name
}

// InteractionEntry is one append-only log row, written after the reply for
// its turn is finalized.
type InteractionEntry struct {
	Timestamp time.Time
	Name      string
	Phone     string
	Message   string
	Intent    Intent
	Language  Language
	Channel   Channel
	Reply     string
}
