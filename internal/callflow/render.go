package callflow

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go/twiml"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// SpeechMode selects how prompts reach the caller: synthesized on the fly by
// the telephony provider, or played from pre-rendered audio files.
type SpeechMode string

const (
	SpeechModeSay  SpeechMode = "say"
	SpeechModePlay SpeechMode = "play"
)

// AudioResolver maps a prompt to the URL of its pre-rendered audio file.
// Returning an empty string falls back to synthesized speech for that prompt.
type AudioResolver func(text string, lang domain.Language) string

const (
	voiceEnglish = "Polly.Joanna"
	voiceFrench  = "Polly.Celine"
	langEnglish  = "en-US"
	langFrench   = "fr-CA"
)

// speak renders one spoken prompt in the configured mode. The voice and
// language attributes follow the detected language of the turn.
func (m *Machine) speak(text string, lang domain.Language) twiml.Element {
	if m.opts.SpeechMode == SpeechModePlay && m.opts.Audio != nil {
		if url := m.opts.Audio(text, lang); url != "" {
			return &twiml.VoicePlay{Url: url}
		}
	}
	return say(text, lang)
}

func say(text string, lang domain.Language) twiml.Element {
	if lang == domain.LanguageFrench {
		return &twiml.VoiceSay{Message: text, Voice: voiceFrench, Language: langFrench}
	}
	return &twiml.VoiceSay{Message: text, Voice: voiceEnglish, Language: langEnglish}
}

func render(elements ...twiml.Element) (string, error) {
	return twiml.Voice(elements)
}

// StaticAudioResolver addresses pre-rendered prompt audio by the digest of
// the prompt text, grouped per language under the base URL. The rendering
// pipeline that produces the files uses the same digest scheme.
func StaticAudioResolver(baseURL string) AudioResolver {
	base := strings.TrimRight(baseURL, "/")
	return func(text string, lang domain.Language) string {
		sum := sha1.Sum([]byte(text))
		code := "en"
		if lang == domain.LanguageFrench {
			code = "fr"
		}
		return fmt.Sprintf("%s/%s/%s.mp3", base, code, hex.EncodeToString(sum[:8]))
	}
}
