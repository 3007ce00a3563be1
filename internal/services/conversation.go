package services

import (
	"sync"

	"briefly-backend/internal/models"
)

// ConversationStore is the process-wide append-only log of chat turns.
// All mutations are serialized behind a mutex so concurrent requests cannot
// interleave partial updates; Snapshot returns a copy so callers can never
// mutate the log through an alias. History lives exactly as long as the
// process and grows without bound.
type ConversationStore struct {
	mu    sync.Mutex
	turns []models.ChatMessage
}

// ConversationCounts are the derived counts returned alongside a snapshot.
type ConversationCounts struct {
	Total     int
	User      int
	Assistant int
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{}
}

// Append adds a turn to the end of the log.
func (s *ConversationStore) Append(turn models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

// Snapshot returns a copy of the log in insertion order plus derived counts.
func (s *ConversationStore) Snapshot() ([]models.ChatMessage, ConversationCounts) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]models.ChatMessage, len(s.turns))
	copy(turns, s.turns)

	counts := ConversationCounts{Total: len(turns)}
	for _, t := range turns {
		switch t.Role {
		case "user":
			counts.User++
		case "assistant":
			counts.Assistant++
		}
	}

	return turns, counts
}

// Len returns the current number of turns in the log.
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Clear resets the log to empty.
func (s *ConversationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
