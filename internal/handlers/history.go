package handlers

import (
	"net/http"

	"briefly-backend/internal/models"
	"briefly-backend/internal/services"
)

type HistoryHandler struct {
	store *services.ConversationStore
}

func NewHistoryHandler(store *services.ConversationStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// Get handles GET /history.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	turns, counts := h.store.Snapshot()

	// Keep the history field an empty array, not null, when the log is empty.
	if turns == nil {
		turns = []models.ChatMessage{}
	}

	writeJSON(w, http.StatusOK, models.HistoryResponse{
		ConversationHistory: turns,
		MessageCount:        counts.Total,
		UserMessages:        counts.User,
		AssistantMessages:   counts.Assistant,
	})
}

// Clear handles DELETE /history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation history cleared"})
}
