package handler

import (
	"net/http"
	"time"

	"homefinder/internal/model"
	"homefinder/internal/session"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles the session profile and direct messages
type ProfileHandler struct {
	session *session.Session
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(sess *session.Session) *ProfileHandler {
	return &ProfileHandler{session: sess}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Profile())
}

// Save handles PUT /api/v1/profile
func (h *ProfileHandler) Save(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.session.SaveProfile(profile)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// SendMessageRequest is a direct message to another user
type SendMessageRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// SendMessage handles POST /api/v1/messages
func (h *ProfileHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.session.SendMessage(model.DirectMessage{
		Recipient: req.Recipient,
		Body:      req.Message,
		SentAt:    time.Now(),
	})
	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

// Messages handles GET /api/v1/messages?recipient=
func (h *ProfileHandler) Messages(c *gin.Context) {
	recipient := c.Query("recipient")
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient query parameter is required"})
		return
	}

	messages := h.session.MessagesWith(recipient)
	if messages == nil {
		messages = []model.DirectMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
