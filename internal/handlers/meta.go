package handlers

import "net/http"

// availableModels is the static list of Groq model identifiers the service
// accepts via GROQ_MODEL.
var availableModels = []string{
	"mixtral-8x7b-32768",
	"llama3-70b-8192",
	"llama3-8b-8192",
	"llama2-70b-4096",
	"gemma-7b-it",
}

type MetaHandler struct {
	serviceName string
	version     string
}

func NewMetaHandler(serviceName, version string) *MetaHandler {
	return &MetaHandler{serviceName: serviceName, version: version}
}

// Root handles GET / with service metadata and the endpoint map.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": h.serviceName,
		"version": h.version,
		"endpoints": map[string]string{
			"chat":          "POST /chat",
			"history":       "GET /history",
			"clear_history": "DELETE /history",
			"news_search":   "POST /news-search",
			"models":        "GET /models",
			"health":        "GET /health",
		},
	})
}

// Health handles GET /health.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": h.serviceName})
}

// Models handles GET /models.
func (h *MetaHandler) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": availableModels})
}
