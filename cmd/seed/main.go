package main

import (
	"context"

	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/common/config"
	"github.com/symptor-ai/symptor/pkg/common/database"
	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/recommendation"
)

// Seeds the condition catalog and wellness recommendations. Reads the seed
// file named by CATALOG_SEED_FILE, falling back to the compiled-in defaults.
func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to postgres")
	}

	catalogRepo := catalog.NewRepository(db)
	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate condition tables")
	}

	conditions, err := catalog.LoadFile(cfg.CatalogSeedFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load catalog seed data")
	}

	ctx := context.Background()
	for i := range conditions {
		if err := catalogRepo.Upsert(ctx, &conditions[i]); err != nil {
			logger.Log.WithError(err).WithField("condition", conditions[i].Name).Fatal("failed to seed condition")
		}
	}
	logger.Log.WithField("count", len(conditions)).Info("Conditions seeded")

	recRepo := recommendation.NewRepository(db)
	if err := recRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate recommendation tables")
	}

	recs := recommendation.DefaultRecommendations()
	for i := range recs {
		if err := recRepo.Upsert(ctx, &recs[i]); err != nil {
			logger.Log.WithError(err).WithField("recommendation", recs[i].Name).Fatal("failed to seed recommendation")
		}
	}
	logger.Log.WithField("count", len(recs)).Info("Recommendations seeded")
}
