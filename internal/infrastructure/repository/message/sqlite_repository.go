package message

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "corchet/web-api/internal/domain/message"
	"corchet/web-api/internal/infrastructure/database/entities"
)

// SqliteRepository persists messages via SQLite using GORM.
type SqliteRepository struct {
	db *gorm.DB
}

// NewSqliteRepository creates a repository backed by the provided DB.
func NewSqliteRepository(db *gorm.DB) *SqliteRepository {
	return &SqliteRepository{db: db}
}

// Insert persists a new message row and writes the assigned identifier and
// timestamp back onto msg.
func (r *SqliteRepository) Insert(ctx context.Context, msg *domain.Message) error {
	record := entities.Message{
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	msg.ID = record.ID
	msg.CreatedAt = record.CreatedAt
	return nil
}

// Recent returns the most recently inserted messages, newest first.
func (r *SqliteRepository) Recent(ctx context.Context, limit int) ([]domain.Message, error) {
	var records []entities.Message
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("fetch recent messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, domain.Message{
			ID:        record.ID,
			Name:      record.Name,
			Email:     record.Email,
			Body:      record.Message,
			CreatedAt: record.CreatedAt,
		})
	}
	return messages, nil
}

// Count returns the total number of stored messages.
func (r *SqliteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return count, nil
}
