package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// InteractionRepository persists mirror rows of the interaction log.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository.
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Append writes one interaction entry as a mirror row. Implements
// interactionlog.Sink.
func (r *InteractionRepository) Append(ctx context.Context, entry domain.InteractionEntry) error {
	row := &domain.Interaction{
		ID:        uuid.New().String(),
		Timestamp: entry.Timestamp,
		Name:      entry.Name,
		Phone:     entry.Phone,
		Message:   entry.Message,
		Intent:    string(entry.Intent),
		Language:  string(entry.Language),
		Channel:   string(entry.Channel),
		Reply:     entry.Reply,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create interaction row: %w", err)
	}
	return nil
}

// ListRecent returns the most recent mirror rows, newest first.
func (r *InteractionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Interaction, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []*domain.Interaction
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return rows, nil
}
