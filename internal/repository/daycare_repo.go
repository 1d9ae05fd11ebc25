package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
)

// DaycareRepository persists seeded business profiles.
type DaycareRepository struct {
	db *gorm.DB
}

// NewDaycareRepository creates a new daycare repository.
func NewDaycareRepository(db *gorm.DB) *DaycareRepository {
	return &DaycareRepository{db: db}
}

// Upsert inserts the profile, or updates the existing row with the same
// slug. Idempotent so seeding can be re-run.
func (r *DaycareRepository) Upsert(ctx context.Context, profile config.BusinessProfile) error {
	fees, err := json.Marshal(profile.Fees)
	if err != nil {
		return fmt.Errorf("encode fees: %w", err)
	}
	programs, err := json.Marshal(profile.Programs)
	if err != nil {
		return fmt.Errorf("encode programs: %w", err)
	}

	row := domain.Daycare{
		Name:        profile.Name,
		Slug:        profile.Slug,
		Phone:       profile.Phone,
		Address:     profile.Address,
		Hours:       profile.Hours,
		Meals:       profile.Meals,
		Fees:        string(fees),
		Programs:    string(programs),
		TourLink:    profile.TourLink,
		OwnerNumber: profile.OwnerNumber,
	}

	var existing domain.Daycare
	err = r.db.WithContext(ctx).Where("slug = ?", profile.Slug).First(&existing).Error
	switch {
	case err == nil:
		row.ID = existing.ID
		if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
			return fmt.Errorf("failed to update daycare: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create daycare: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up daycare: %w", err)
	}
	return nil
}

// GetBySlug returns one daycare row or nil when absent.
func (r *DaycareRepository) GetBySlug(ctx context.Context, slug string) (*domain.Daycare, error) {
	var row domain.Daycare
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daycare: %w", err)
	}
	return &row, nil
}
