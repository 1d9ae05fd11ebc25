package interactionlog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// Sink appends one interaction row to a log store.
type Sink interface {
	Append(ctx context.Context, entry domain.InteractionEntry) error
}

// Logger records one entry per processed turn. Record is best-effort: a
// failing primary sink falls back to the local mirror and no failure ever
// reaches the reply-producing caller.
type Logger struct {
	primary Sink
	mirror  Sink
}

// New creates an interaction logger. Either sink may be nil.
func New(primary, mirror Sink) *Logger {
	return &Logger{primary: primary, mirror: mirror}
}

// Record appends the entry. The primary sink is tried first; on failure the
// entry is written to the mirror so a transient outage does not lose it.
func (l *Logger) Record(ctx context.Context, entry domain.InteractionEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if l.primary != nil {
		err := l.primary.Append(ctx, entry)
		if err == nil {
			return
		}
		logger.Base().Warn("primary log sink failed, falling back to mirror",
			zap.Error(err),
			zap.String("channel", string(entry.Channel)),
			zap.String("intent", string(entry.Intent)))
	}

	if l.mirror == nil {
		if l.primary == nil {
			logger.Base().Warn("no log sink configured, dropping interaction entry",
				zap.String("channel", string(entry.Channel)))
		}
		return
	}
	if err := l.mirror.Append(ctx, entry); err != nil {
		logger.Base().Error("mirror log sink failed, interaction entry lost",
			zap.Error(err),
			zap.String("channel", string(entry.Channel)),
			zap.String("intent", string(entry.Intent)))
	}
}
