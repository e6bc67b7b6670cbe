package db

import (
	"github.com/smreview/smreview-backend/config"
	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/data"
	"github.com/smreview/smreview-backend/pkg/logger"
	"github.com/smreview/smreview-backend/pkg/util"
	"gorm.io/gorm"
)

// Migrate runs database migrations and seeds the built-in catalog
func Migrate(cfg *config.Config) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Review{},
		&model.CommentRecord{},
		&model.LikeCounter{},
		&model.DailyViewCounter{},
		&model.Admin{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := SeedStaticReviews(DB); err != nil {
		logger.Error("Failed to seed static reviews", err)
		return err
	}

	if err := bootstrapAdmin(cfg); err != nil {
		logger.Error("Failed to bootstrap admin account", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// SeedStaticReviews inserts catalog reviews that are not present yet.
// Existing rows are left alone so their counters survive restarts.
func SeedStaticReviews(database *gorm.DB) error {
	seeded := 0
	for _, review := range data.StaticReviews() {
		var count int64
		if err := database.Model(&model.Review{}).Where("id = ?", review.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := database.Create(&review).Error; err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		logger.Info("Seeded static reviews", map[string]interface{}{
			"count": seeded,
		})
	}
	return nil
}

// bootstrapAdmin creates the configured admin account on first run
func bootstrapAdmin(cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin bootstrap", nil)
		return nil
	}

	var count int64
	if err := DB.Model(&model.Admin{}).Where("email = ?", cfg.Admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := util.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := model.Admin{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Bootstrapped admin account", map[string]interface{}{
		"email": cfg.Admin.Email,
	})
	return nil
}
