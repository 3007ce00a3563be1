package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"briefly-backend/internal/models"
	"briefly-backend/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles POST /chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	resp, err := h.chatService.Send(r.Context(), req.Message)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("LLM_ERROR", "Failed to generate chat completion", r))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
