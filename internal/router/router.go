package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"briefly-backend/internal/handlers"
	"briefly-backend/internal/middleware"
)

func New(
	metaHandler *handlers.MetaHandler,
	chatHandler *handlers.ChatHandler,
	historyHandler *handlers.HistoryHandler,
	newsHandler *handlers.NewsHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(frontendURL))

	// Limit the routes that spend completion tokens (30 req/min per IP)
	llmLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ──── Service Metadata ────
	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)
	r.Get("/models", metaHandler.Models)

	// ──── Conversation History ────
	r.Get("/history", historyHandler.Get)
	r.Delete("/history", historyHandler.Clear)

	// ──── Completion-Backed Routes ────
	r.Group(func(r chi.Router) {
		r.Use(llmLimiter.Middleware)
		r.Post("/chat", chatHandler.Send)
		r.Post("/news-search", newsHandler.Search)
	})

	return r
}
