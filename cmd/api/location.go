package main

import (
	"errors"
	"net/http"

	"astro-atlas/internal/location"

	"github.com/gin-gonic/gin"
)

// SearchLocationsInput defines the query parameters for the search endpoint
type SearchLocationsInput struct {
	Query string `form:"query" binding:"required"` // Free-text place name
	Limit int    `form:"limit"`                    // Maximum number of candidates
}

// GetLocationDetailsInput defines the query parameters for the details endpoint.
// Pointers keep binding:"required" from rejecting legitimate zero coordinates.
type GetLocationDetailsInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleSearchLocations godoc
// @Summary Search locations
// @Description Resolve a free-text place name into deduplicated, ranked location candidates from the curated gazetteer and the live geocoder
// @Tags location
// @Accept json
// @Produce json
// @Param query query string true "Free-text place name" minLength(2) example(Mumbai)
// @Param limit query int false "Maximum number of candidates" minimum(1) maximum(20) default(10)
// @Success 200 {array} types.LocationCandidate
// @Failure 400 {object} map[string]string
// @Router /locations/search [get]
func (app *App) handleSearchLocations(c *gin.Context) {
	var input SearchLocationsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := input.Limit
	if limit <= 0 {
		limit = app.cfg.Search.DefaultLimit
	}
	if limit > app.cfg.Search.MaxLimit {
		limit = app.cfg.Search.MaxLimit
	}

	// Delegate to business layer; the engine never fails, it degrades
	candidates := app.locationService.SearchLocations(input.Query, limit)

	c.JSON(http.StatusOK, candidates)
}

// handleGetLocationDetails godoc
// @Summary Get location details
// @Description Reverse-resolve coordinates into one best-effort location candidate
// @Tags location
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(28.6315)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(77.2167)
// @Success 200 {object} types.LocationCandidate
// @Failure 400 {object} map[string]string
// @Router /locations/details [get]
func (app *App) handleGetLocationDetails(c *gin.Context) {
	var input GetLocationDetailsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := app.locationService.GetLocationDetails(*input.Latitude, *input.Longitude)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, location.ErrInvalidLatitude) || errors.Is(err, location.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to get location details",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get location details"})
		return
	}

	c.JSON(http.StatusOK, candidate)
}
