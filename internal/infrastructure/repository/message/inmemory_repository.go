package message

import (
	"context"
	"sync"
	"time"

	domain "corchet/web-api/internal/domain/message"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	entries []domain.Message
}

// NewInMemoryRepository creates an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Insert appends a new message, assigning a monotonically increasing ID.
func (r *InMemoryRepository) Insert(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = r.nextID
	msg.CreatedAt = time.Now().UTC()
	r.nextID++
	r.entries = append(r.entries, *msg)
	return nil
}

// Recent returns up to limit messages, newest first.
func (r *InMemoryRepository) Recent(ctx context.Context, limit int) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	if limit < 0 {
		limit = 0
	}

	messages := make([]domain.Message, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(messages) < limit; i-- {
		messages = append(messages, r.entries[i])
	}
	return messages, nil
}

// Count returns the number of stored messages.
func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries)), nil
}
