package message

import "context"

// Repository exposes data access for Message entities. Messages are
// insert-only: no update or delete operations exist.
type Repository interface {
	// Insert persists msg, assigning its ID and CreatedAt.
	Insert(ctx context.Context, msg *Message) error
	// Recent returns the most recently inserted messages, newest first,
	// bounded to limit rows.
	Recent(ctx context.Context, limit int) ([]Message, error)
	// Count returns the total number of stored messages.
	Count(ctx context.Context) (int64, error)
}
