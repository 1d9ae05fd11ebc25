package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// LeadRepository persists enrollment leads captured from openings turns.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// RecordLead stores one enrollment lead. The utterance itself lives in the
// interaction log; the owner follows up by phone.
func (r *LeadRepository) RecordLead(ctx context.Context, phone, parentName string) error {
	lead := &domain.Lead{
		Phone:      phone,
		ParentName: parentName,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// CountSince returns how many leads arrived after the given time.
func (r *LeadRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("created_at > ?", since).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}
