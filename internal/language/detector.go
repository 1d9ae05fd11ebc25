package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// frenchGreetings short-circuit the statistical guess: a one-word "Bonjour"
// is too short for trigram detection to code reliably.
var frenchGreetings = []string{"bonjour", "salut"}

// Detector classifies an utterance's language. It is pure and total: any
// input, including empty, yields a language.
type Detector struct{}

// NewDetector creates a new language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns French when the statistical guess codes French or the text
// contains a French greeting token; English otherwise. Empty input defaults
// to English.
func (d *Detector) Detect(text string) domain.Language {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.LanguageEnglish
	}

	lower := strings.ToLower(trimmed)
	for _, greeting := range frenchGreetings {
		if strings.Contains(lower, greeting) {
			return domain.LanguageFrench
		}
	}

	if whatlanggo.Detect(trimmed).Lang == whatlanggo.Fra {
		return domain.LanguageFrench
	}
	return domain.LanguageEnglish
}
