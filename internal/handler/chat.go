package handler

import (
	"errors"
	"net/http"

	"homefinder/internal/model"
	"homefinder/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversation turns with the AI assistant
type ChatHandler struct {
	assistant       *service.Assistant
	defaultLanguage string
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant *service.Assistant, defaultLanguage string) *ChatHandler {
	return &ChatHandler{assistant: assistant, defaultLanguage: defaultLanguage}
}

// ChatRequest is one user utterance plus the desired reply language
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// Ask handles POST /api/v1/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	language := req.Language
	if language == "" {
		language = h.defaultLanguage
	}

	reply, err := h.assistant.Ask(c.Request.Context(), req.Message, language)
	if err != nil {
		if errors.Is(err, model.ErrAssistantUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Reset handles POST /api/v1/chat/reset
func (h *ChatHandler) Reset(c *gin.Context) {
	h.assistant.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
