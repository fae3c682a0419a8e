package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"homefinder/internal/model"
	"homefinder/internal/session"
)

// Assistant assembles the per-turn payload for the external chat model
// and manages the bounded history window.
//
// Only user turns are retained in the replayed history; assistant
// replies are not stored back (see DESIGN.md).
type Assistant struct {
	client       AIClient
	session      *session.Session
	historyLimit int

	// mu serializes conversation turns; the history window is
	// truncated and extended under it.
	mu      sync.Mutex
	history []string
}

// NewAssistant creates a new assistant adapter. historyLimit bounds the
// number of prior user turns replayed per call.
func NewAssistant(client AIClient, sess *session.Session, historyLimit int) *Assistant {
	return &Assistant{
		client:       client,
		session:      sess,
		historyLimit: historyLimit,
	}
}

// Ask sends one user utterance and returns the assistant's raw reply.
// Stored history is truncated to the most recent historyLimit entries
// before the call; the new utterance is appended only after the call
// succeeds. External failures surface as model.ErrAssistantUnavailable
// with no retry and no fallback content.
func (a *Assistant) Ask(ctx context.Context, prompt, language string) (string, error) {
	if a.client == nil || !a.client.IsEnabled() {
		return "", fmt.Errorf("%w: no chat model configured", model.ErrAssistantUnavailable)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if excess := len(a.history) - a.historyLimit; excess > 0 {
		a.history = a.history[excess:]
	}

	messages := make([]ChatMessage, 0, len(a.history)+2)
	messages = append(messages, ChatMessage{
		Role:    RoleSystem,
		Content: a.systemPrompt(language),
	})
	for _, turn := range a.history {
		messages = append(messages, ChatMessage{Role: RoleUser, Content: turn})
	}
	messages = append(messages, ChatMessage{Role: RoleUser, Content: prompt})

	reply, err := a.client.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrAssistantUnavailable, err)
	}

	a.history = append(a.history, prompt)
	return reply, nil
}

// Reset clears the conversation history
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// History returns a copy of the retained user turns
func (a *Assistant) History() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

// systemPrompt builds the instruction carrying the housing context
// (qualified listings), the user profile and the output language.
func (a *Assistant) systemPrompt(language string) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant that consults the user on housing. ")
	b.WriteString("Answer the latest user question, which might reference context in the chat history, ")
	fmt.Fprintf(&b, "in the language %s, in the most decisive way, and don't redirect to others. ", language)
	b.WriteString("Take the responsibility.\n")

	homes := a.session.Homes()
	if len(homes) > 0 {
		b.WriteString("\nListings the user qualified for:\n")
		for _, h := range homes {
			b.WriteString(h)
			b.WriteString("\n")
		}
	}

	profile := a.session.Profile()
	fmt.Fprintf(&b, "\nUser profile: name=%s %s, age=%d, job=%s, monthly income=%.2f\n",
		profile.Name, profile.Surname, profile.Age, profile.Job, profile.MonthlyIncome)

	return b.String()
}
