package handler

import (
	"errors"
	"net/http"

	"homefinder/internal/model"
	"homefinder/internal/service"

	"github.com/gin-gonic/gin"
)

// RoommateHandler handles shared-housing roommate matching
type RoommateHandler struct {
	matcher *service.RoommateMatcher
}

// NewRoommateHandler creates a new roommate handler
func NewRoommateHandler(matcher *service.RoommateMatcher) *RoommateHandler {
	return &RoommateHandler{matcher: matcher}
}

// RoommateMatchRequest carries the user's binary trait answers
type RoommateMatchRequest struct {
	Quiet  int `json:"quiet" binding:"min=0,max=1"`
	Social int `json:"social" binding:"min=0,max=1"`
	Pets   int `json:"pets" binding:"min=0,max=1"`
}

// Match handles POST /api/v1/roommates/match
func (h *RoommateHandler) Match(c *gin.Context) {
	var req RoommateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	traits := []float64{float64(req.Quiet), float64(req.Social), float64(req.Pets)}
	best, similarity, err := h.matcher.BestMatch(traits)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Matching failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"best_match": best.Name,
		"similarity": similarity,
	})
}
