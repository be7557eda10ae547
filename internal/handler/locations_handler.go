package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

// LocationsHandler serves the catalog: public reads plus the admin-gated
// CRUD operations.
type LocationsHandler struct {
	locationsRepo repository.LocationsRepository
}

// NewLocationsHandler creates a new LocationsHandler instance.
func NewLocationsHandler(locationsRepo repository.LocationsRepository) *LocationsHandler {
	return &LocationsHandler{
		locationsRepo: locationsRepo,
	}
}

// List GET /api/locations - all catalog documents
func (h *LocationsHandler) List(c *gin.Context) {
	locations, err := h.locationsRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list locations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// Get GET /api/locations/:id - one catalog document
func (h *LocationsHandler) Get(c *gin.Context) {
	id := c.Param("id")

	loc, err := h.locationsRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Location not found: " + id,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get location: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// Create POST /api/admin/locations - add a catalog document
func (h *LocationsHandler) Create(c *gin.Context) {
	var loc model.CatalogLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := loc.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"message": err.Error(),
		})
		return
	}

	created, err := h.locationsRepo.Create(c.Request.Context(), &loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create location: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update PUT /api/admin/locations/:id - overwrite a catalog document
func (h *LocationsHandler) Update(c *gin.Context) {
	var loc model.CatalogLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}
	loc.ID = c.Param("id")

	if err := loc.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"message": err.Error(),
		})
		return
	}

	if err := h.locationsRepo.Update(c.Request.Context(), &loc); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Location not found: " + loc.ID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to update location: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// Delete DELETE /api/admin/locations/:id - remove a catalog document
func (h *LocationsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.locationsRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Location not found: " + id,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to delete location: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
