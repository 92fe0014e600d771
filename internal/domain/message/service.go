package message

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidSubmission is returned when name or body is empty after trimming.
var ErrInvalidSubmission = errors.New("name and message are required")

// Service describes the business logic surface for message operations.
type Service interface {
	// Submit validates and persists a contact-form submission.
	Submit(ctx context.Context, name, email, body string) (Message, error)
	Recent(ctx context.Context, limit int) ([]Message, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the message service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "message-service").Logger(),
	}
}

func (s *service) Submit(ctx context.Context, name, email, body string) (Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if name == "" || body == "" {
		return Message{}, ErrInvalidSubmission
	}

	msg := Message{
		Name:  name,
		Email: email,
		Body:  body,
	}
	if err := s.repo.Insert(ctx, &msg); err != nil {
		s.log.Error().Err(err).Msg("insert message")
		return Message{}, err
	}

	s.log.Info().Uint("message_id", msg.ID).Msg("stored contact message")
	return msg, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Message, error) {
	messages, err := s.repo.Recent(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch recent messages")
		return nil, err
	}
	return messages, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count messages")
		return 0, err
	}
	return count, nil
}
