package handlers

import (
	"github.com/rs/zerolog"

	domain "corchet/web-api/internal/domain/message"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Pages *PageHandler
	Stats *StatsHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(messageService domain.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Pages: NewPageHandler(messageService, log),
		Stats: NewStatsHandler(messageService, log),
	}
}
