// Package session holds the per-process application state: the user
// profile, the homes log and the direct-message log. It is an explicit
// struct threaded through handlers and services instead of
// module-level globals.
package session

import (
	"sync"

	"github.com/google/uuid"

	"homefinder/internal/model"
)

// Session owns the user profile, the "my homes" log of listings the
// user qualified for, and the direct-message log. One session per
// process; nothing survives process exit.
type Session struct {
	mu       sync.RWMutex
	id       string
	profile  model.UserProfile
	homes    []string
	messages []model.DirectMessage
}

// New creates a session with an empty profile
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Profile returns a copy of the current user profile
func (s *Session) Profile() model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SaveProfile replaces the stored profile
func (s *Session) SaveProfile(p model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// AppendHome records a serialized listing the user qualified for.
// The log grows monotonically and is not deduplicated; reassessing
// the same listing appends again.
func (s *Session) AppendHome(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homes = append(s.homes, entry)
}

// Homes returns a copy of the homes log in append order
func (s *Session) Homes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.homes))
	copy(out, s.homes)
	return out
}

// SendMessage appends a direct message to the log
func (s *Session) SendMessage(msg model.DirectMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// MessagesWith returns the messages sent to the given recipient
func (s *Session) MessagesWith(recipient string) []model.DirectMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.DirectMessage
	for _, m := range s.messages {
		if m.Recipient == recipient {
			out = append(out, m)
		}
	}
	return out
}
