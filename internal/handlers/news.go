package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"briefly-backend/internal/models"
	"briefly-backend/internal/services"
)

const defaultMaxResults = 5

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// Search handles POST /news-search.
func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.NewsSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Keyword is required", r))
		return
	}

	maxResults := defaultMaxResults
	if req.MaxResults != nil {
		if *req.MaxResults < 1 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "max_results must be at least 1", r))
			return
		}
		maxResults = *req.MaxResults
	}

	resp, err := h.newsService.Summarize(r.Context(), req.Keyword, maxResults)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoArticles):
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No news articles found for keyword: "+req.Keyword, r))
		case errors.Is(err, services.ErrSearchUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResp("SEARCH_UNAVAILABLE", "News search is temporarily unavailable", r))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResp("LLM_ERROR", "Failed to summarize news articles", r))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
