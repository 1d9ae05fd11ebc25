package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/compose"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/internal/escalate"
	"github.com/brightbeginnings/daycare-voice-service/internal/intent"
	"github.com/brightbeginnings/daycare-voice-service/internal/interactionlog"
	"github.com/brightbeginnings/daycare-voice-service/internal/language"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// LeadRecorder captures an enrollment lead for later owner follow-up.
type LeadRecorder interface {
	RecordLead(ctx context.Context, phone, parentName string) error
}

// Responder answers one inbound chat message. Stateless between messages:
// each one is detected, classified, answered and logged on its own.
type Responder struct {
	detector   *language.Detector
	classifier *intent.Classifier
	composer   *compose.Composer
	escalator  *escalate.Manager
	ilog       *interactionlog.Logger
	leads      LeadRecorder
}

// NewResponder wires the chat surface. leads may be nil.
func NewResponder(
	detector *language.Detector,
	classifier *intent.Classifier,
	composer *compose.Composer,
	escalator *escalate.Manager,
	ilog *interactionlog.Logger,
	leads LeadRecorder,
) *Responder {
	return &Responder{
		detector:   detector,
		classifier: classifier,
		composer:   composer,
		escalator:  escalator,
		ilog:       ilog,
		leads:      leads,
	}
}

// Reply produces the outbound message for one inbound turn. It is total:
// every turn gets a reply and exactly one interaction log entry.
func (r *Responder) Reply(ctx context.Context, turn domain.Turn) string {
	lang := r.detector.Detect(turn.Text)
	resolved := r.classifier.Classify(turn.Text)

	if r.escalator.ShouldEscalate(resolved) {
		r.escalator.NotifyHandoff(turn, resolved)
		r.record(ctx, turn, resolved, lang, domain.ForwardedReply)
		return r.escalator.HandoffLine(lang)
	}

	reply, ok := r.composer.Compose(compose.SetFAQ, resolved, lang)
	if !ok {
		reply = r.composer.ComposeAI(ctx, turn.Text, lang)
	}

	if resolved == domain.IntentOpenings && r.leads != nil && turn.CallerID != "" {
		if err := r.leads.RecordLead(ctx, turn.CallerID, turn.CallerName); err != nil {
			logger.Base().Warn("lead capture failed",
				zap.String("phone", turn.CallerID),
				zap.Error(err))
		}
	}

	r.record(ctx, turn, resolved, lang, reply)
	return reply
}

func (r *Responder) record(ctx context.Context, turn domain.Turn, resolved domain.Intent, lang domain.Language, reply string) {
	r.ilog.Record(ctx, domain.InteractionEntry{
		Name:     turn.CallerName,
		Phone:    turn.CallerID,
		Message:  turn.Text,
		Intent:   resolved,
		Language: lang,
		Channel:  turn.Channel,
		Reply:    reply,
	})
}
