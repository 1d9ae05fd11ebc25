package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightbeginnings/daycare-voice-service/internal/config"
	"github.com/brightbeginnings/daycare-voice-service/internal/repository"
	"github.com/brightbeginnings/daycare-voice-service/pkg/logger"
)

// Seeds the local sqlite store with the business profiles from the daycare
// JSON file. Safe to re-run; profiles are upserted by slug.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: .env file not found or skipped: %v", err)
	}

	if _, err := logger.Init(os.Getenv("LOG_ENV")); err != nil {
		log.Printf("Failed to initialize zap logger: %v", err)
	}

	cfg := config.LoadFromEnv()

	profiles, err := config.LoadBusinessProfiles(cfg.DaycareFile)
	if err != nil {
		logger.Base().Fatal("failed to load daycare profiles",
			zap.String("file", cfg.DaycareFile),
			zap.Error(err))
	}

	repos, err := repository.Open(cfg.SQLitePath)
	if err != nil {
		logger.Base().Fatal("failed to open sqlite store",
			zap.String("path", cfg.SQLitePath),
			zap.Error(err))
	}
	defer repos.Close()

	ctx := context.Background()
	for _, profile := range profiles {
		if err := repos.Daycare().Upsert(ctx, profile); err != nil {
			logger.Base().Error("failed to seed daycare",
				zap.String("slug", profile.Slug),
				zap.Error(err))
			continue
		}
		logger.Base().Info("seeded daycare",
			zap.String("slug", profile.Slug),
			zap.String("name", profile.Name))
	}

	logger.Base().Info("seeding complete", zap.Int("profiles", len(profiles)))
}
