package service

import (
	"context"
)

// AIClient is the minimal contract with the external text-generation
// service: send messages, receive text.
type AIClient interface {
	// Chat sends the conversation and returns the assistant's raw reply
	Chat(ctx context.Context, messages []ChatMessage) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Ensure OpenAIClient implements AIClient
var _ AIClient = (*OpenAIClient)(nil)
