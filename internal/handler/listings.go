package handler

import (
	"errors"
	"net/http"
	"strconv"

	"homefinder/internal/catalog"
	"homefinder/internal/model"
	"homefinder/internal/service"
	"homefinder/internal/session"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles listing retrieval, submission and assessment
type ListingHandler struct {
	catalog  *catalog.Catalog
	assessor *service.EligibilityAssessor
	session  *session.Session
}

// NewListingHandler creates a new listing handler
func NewListingHandler(cat *catalog.Catalog, assessor *service.EligibilityAssessor, sess *session.Session) *ListingHandler {
	return &ListingHandler{catalog: cat, assessor: assessor, session: sess}
}

// SubmitListingRequest is the "offer a house" form payload
type SubmitListingRequest struct {
	Type             model.ListingType           `json:"type" binding:"required"`
	OwnerName        string                      `json:"owner_name"`
	Address          string                      `json:"address" binding:"required"`
	Size             float64                     `json:"size" binding:"required"`
	Price            float64                     `json:"price"`
	Preferences      []model.Audience            `json:"preferences"`
	ProximitySchools bool                        `json:"proximity_schools"`
	ProximityParks   bool                        `json:"proximity_parks"`
	SharedHousing    *model.SharedHousingDetails `json:"shared_housing,omitempty"`
}

// GetListing handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// SubmitListing handles POST /api/v1/listings
func (h *ListingHandler) SubmitListing(c *gin.Context) {
	var req SubmitListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	preferences := req.Preferences
	if req.Type == model.ListingTypeSharedHousing {
		// Shared housing offers always target students
		preferences = []model.Audience{model.AudienceStudents}
	}

	listing, err := h.catalog.Submit(model.Listing{
		Type:             req.Type,
		OwnerName:        req.OwnerName,
		Address:          req.Address,
		Size:             req.Size,
		Price:            req.Price,
		Preferences:      preferences,
		ProximitySchools: req.ProximitySchools,
		ProximityParks:   req.ProximityParks,
		SharedHousing:    req.SharedHousing,
	})
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add listing: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// Assess handles POST /api/v1/listings/:id/assess
func (h *ListingHandler) Assess(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	eligible, err := h.assessor.Assess(h.session.Profile(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assessment failed: " + err.Error()})
		return
	}

	message := "We're sorry, but you do not meet the requirements for this house."
	if eligible {
		message = "Congratulations! You meet the requirements for this house."
	}

	c.JSON(http.StatusOK, gin.H{
		"eligible": eligible,
		"message":  message,
	})
}

// Homes handles GET /api/v1/homes
func (h *ListingHandler) Homes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"homes": h.session.Homes()})
}
