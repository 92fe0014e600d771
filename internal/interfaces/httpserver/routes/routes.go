package routes

import (
	"github.com/gin-gonic/gin"

	"corchet/web-api/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration for the site.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches the page and API routes.
func (p *Provider) Register(engine *gin.Engine) {
	engine.GET("/", p.handlers.Pages.Home)
	engine.GET("/about", p.handlers.Pages.About)
	engine.GET("/contact", p.handlers.Pages.ContactForm)
	engine.POST("/contact", p.handlers.Pages.ContactSubmit)

	api := engine.Group("/api")
	api.GET("/stats", p.handlers.Stats.Stats)
}
