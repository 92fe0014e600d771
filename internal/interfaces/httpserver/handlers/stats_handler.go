package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "corchet/web-api/internal/domain/message"
)

type statsResponse struct {
	Messages int64 `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatsHandler serves the JSON stats endpoint.
type StatsHandler struct {
	service domain.Service
	log     zerolog.Logger
}

// NewStatsHandler wires dependencies for the stats route.
func NewStatsHandler(service domain.Service, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With().Str("component", "stats-handler").Logger(),
	}
}

// Stats returns the total number of stored messages.
func (h *StatsHandler) Stats(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, statsResponse{Messages: count})
}
