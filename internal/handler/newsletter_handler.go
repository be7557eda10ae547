package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DebuggingNinjas/GeoAssist/internal/application"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

// NewsletterHandler serves the landing page subscribe form.
type NewsletterHandler struct {
	newsletterService application.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler instance.
func NewNewsletterHandler(newsletterService application.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe POST /api/newsletter - add an email to the list
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully!"})
	case errors.Is(err, application.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email",
			"message": "Please provide a valid email address.",
		})
	case errors.Is(err, repository.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "already_subscribed",
			"message": "This email is already subscribed.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to subscribe: " + err.Error(),
		})
	}
}
