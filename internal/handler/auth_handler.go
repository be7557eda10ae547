package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DebuggingNinjas/GeoAssist/internal/application"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// AuthHandler serves the auth microservice's register/login endpoints.
type AuthHandler struct {
	accountsService application.AccountsService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(accountsService application.AccountsService) *AuthHandler {
	return &AuthHandler{
		accountsService: accountsService,
	}
}

// Register POST /register - create an account
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	err := h.accountsService.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
	case errors.Is(err, application.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
	case errors.Is(err, application.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists. Please choose a different one."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Login POST /login - verify credentials and issue a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}

	token, err := h.accountsService.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "token": token})
	case errors.Is(err, application.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
