package compose

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/internal/prompts"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// Completer is the opaque text-completion collaborator. It may fail; the
// composer recovers locally and never surfaces that failure.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Composer combines intent, language and the business profile into a reply.
// Templated intents never touch the completer; everything else falls back to
// an AI-generated reply grounded in the profile facts.
type Composer struct {
	profile   *config.BusinessProfile
	completer Completer
}

// NewComposer creates a composer. completer may be nil, in which case every
// AI-fallback reply degrades to the fixed apology.
func NewComposer(profile *config.BusinessProfile, completer Completer) *Composer {
	return &Composer{profile: profile, completer: completer}
}

// Compose returns the canned reply for the intent in the given language and
// template set. ok is false when no template covers the combination; the
// caller then routes through ComposeAI.
func (c *Composer) Compose(set TemplateSet, intent domain.Intent, lang domain.Language) (string, bool) {
	fn, ok := templates[templateKey{set: set, intent: intent, lang: lang}]
	if !ok {
		return "", false
	}
	return fn(c.profile), true
}

// ComposeAI delegates the caller's utterance to the text-completion service
// with a system instruction built from the profile. It is total: any failure
// of the external call yields the fixed apology in the detected language.
func (c *Composer) ComposeAI(ctx context.Context, text string, lang domain.Language) string {
	if c.completer == nil {
		return Apology(lang)
	}

	system := prompts.BuildSystemInstruction(c.profile, lang)
	reply, err := c.completer.Complete(ctx, system, text)
	if err != nil {
		logger.Base().Warn("ai completion failed, using apology reply",
			zap.Error(err),
			zap.String("language", string(lang)))
		return Apology(lang)
	}
	if strings.TrimSpace(reply) == "" {
		return Apology(lang)
	}
	return reply
}

// Apology is the fixed sentence returned when the completion service fails.
func Apology(lang domain.Language) string {
	if lang == domain.LanguageFrench {
		return "Désolée, j'ai un souci technique. Pouvez-vous réessayer plus tard ?"
	}
	return "Sorry, I'm having a technical issue. Please try again later."
}
