package handler

import (
	"errors"
	"net/http"

	"homefinder/internal/model"
	"homefinder/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles matching-related HTTP requests
type MatchHandler struct {
	matcher *service.Matcher
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matcher *service.Matcher) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

// Match handles POST /api/v1/match
func (h *MatchHandler) Match(c *gin.Context) {
	var criteria model.PreferenceCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.matcher.Match(&criteria)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Match failed: " + err.Error()})
		return
	}

	// Empty catalog and zero matches are both valid outcomes that need
	// different user messaging.
	message := ""
	if result.CatalogEmpty {
		message = "No properties available in the database."
	} else if result.Total == 0 {
		message = "No options found matching your criteria."
	}

	c.JSON(http.StatusOK, gin.H{
		"matches":       result.Matches,
		"total":         result.Total,
		"catalog_empty": result.CatalogEmpty,
		"message":       message,
	})
}
