package handler

import (
	"errors"
	"net/http"

	"homefinder/internal/catalog"
	"homefinder/internal/model"
	"homefinder/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles the location-explorer HTTP requests
type LocationHandler struct {
	scorer  *service.Scorer
	catalog *catalog.Catalog
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(scorer *service.Scorer, cat *catalog.Catalog) *LocationHandler {
	return &LocationHandler{scorer: scorer, catalog: cat}
}

// Scores handles POST /api/v1/locations/scores
func (h *LocationHandler) Scores(c *gin.Context) {
	var pref model.LocationPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	results, err := h.scorer.RankListings(h.catalog.All(), pref)
	if err != nil {
		if errors.Is(err, model.ErrZeroTargetPrice) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scoring failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}

// Districts handles POST /api/v1/locations/districts
func (h *LocationHandler) Districts(c *gin.Context) {
	var pref model.LocationPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	counts := h.scorer.CountByDistrict(h.catalog.All(), pref)
	c.JSON(http.StatusOK, gin.H{"districts": counts})
}
