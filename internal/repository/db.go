package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// Manager combines the repositories backed by the local sqlite store.
type Manager struct {
	db              *gorm.DB
	daycareRepo     *DaycareRepository
	leadRepo        *LeadRepository
	interactionRepo *InteractionRepository
}

// Open opens (creating if needed) the sqlite database, migrates the schema
// and returns a repository manager.
func Open(path string) (*Manager, error) {
	gormLog := gormlogger.New(logger.NewGORMWriter(), gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Error,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Daycare{}, &domain.Lead{}, &domain.Interaction{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Manager{
		db:              db,
		daycareRepo:     NewDaycareRepository(db),
		leadRepo:        NewLeadRepository(db),
		interactionRepo: NewInteractionRepository(db),
	}, nil
}

// Daycare returns the daycare repository.
func (m *Manager) Daycare() *DaycareRepository {
	return m.daycareRepo
}

// Lead returns the lead repository.
func (m *Manager) Lead() *LeadRepository {
	return m.leadRepo
}

// Interaction returns the interaction mirror repository.
func (m *Manager) Interaction() *InteractionRepository {
	return m.interactionRepo
}

// Ping checks the database connection.
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
