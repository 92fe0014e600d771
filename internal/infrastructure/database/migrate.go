package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"corchet/web-api/internal/infrastructure/database/entities"
)

// AutoMigrate ensures the messages table exists. It is idempotent and safe
// to run on every process start.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Message{}); err != nil {
		return err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entities.Message{}).Count(&count).Error; err != nil {
		return err
	}
	log.Debug().Int64("rows", count).Msg("messages table ready")

	return nil
}
