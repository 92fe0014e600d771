package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "corchet/web-api/internal/domain/message"
	"corchet/web-api/internal/infrastructure/metrics"
)

// homeMessageLimit bounds the message list shown on the home page.
const homeMessageLimit = 5

// PageHandler renders the HTML pages of the site.
type PageHandler struct {
	service domain.Service
	log     zerolog.Logger
}

// NewPageHandler wires dependencies for the page routes.
func NewPageHandler(service domain.Service, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		log:     log.With().Str("component", "page-handler").Logger(),
	}
}

// Home renders the landing page with the most recent messages.
func (h *PageHandler) Home(c *gin.Context) {
	messages, err := h.service.Recent(c.Request.Context(), homeMessageLimit)
	if err != nil {
		h.renderError(c)
		return
	}
	c.HTML(http.StatusOK, "home", gin.H{
		"Title":    "Home",
		"Year":     currentYear(),
		"Messages": messages,
	})
}

// About renders the static about page.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about", gin.H{
		"Title": "About",
		"Year":  currentYear(),
	})
}

// ContactForm renders the contact form. A sent=1 query parameter shows the
// success banner (post-redirect-get).
func (h *PageHandler) ContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact", contactData(c.Query("sent") == "1", "", "", "", ""))
}

// ContactSubmit validates and stores a submission, then redirects so a page
// refresh does not resubmit the form.
func (h *PageHandler) ContactSubmit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	body := c.PostForm("message")

	_, err := h.service.Submit(c.Request.Context(), name, email, body)
	if errors.Is(err, domain.ErrInvalidSubmission) {
		metrics.RecordSubmission("rejected")
		c.HTML(http.StatusOK, "contact", contactData(false,
			"Name and message are required.", name, email, body))
		return
	}
	if err != nil {
		metrics.RecordSubmission("failed")
		h.renderError(c)
		return
	}

	metrics.RecordSubmission("accepted")
	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

func (h *PageHandler) renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title": "Error",
		"Year":  currentYear(),
	})
}

func contactData(success bool, errMsg, name, email, body string) gin.H {
	return gin.H{
		"Title":   "Contact",
		"Year":    currentYear(),
		"Success": success,
		"Error":   errMsg,
		"Name":    name,
		"Email":   email,
		"Body":    body,
	}
}

func currentYear() int {
	return time.Now().UTC().Year()
}
