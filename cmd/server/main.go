package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"briefly-backend/internal/config"
	"briefly-backend/internal/handlers"
	"briefly-backend/internal/router"
	"briefly-backend/internal/services"
)

const (
	serviceName = "Briefly Backend"
	version     = "1.0.0"
)

func main() {
	log.Printf("🚀 Starting %s...", serviceName)

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Groq Client ────
	groqClient, err := services.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.Model)
	if err != nil {
		log.Fatalf("✗ Groq client initialization failed: %v", err)
	}
	log.Printf("✓ Groq client initialized (model: %s)", cfg.Model)

	// ──── Step 3: Initialize Services ────
	store := services.NewConversationStore()
	chatService := services.NewChatService(groqClient, store, cfg.Model, cfg.MaxTokens, cfg.Temperature, cfg.SystemPrompt)
	searchProvider := services.NewDuckDuckGoProvider(time.Duration(cfg.SearchTimeoutSeconds) * time.Second)
	newsService := services.NewNewsService(groqClient, searchProvider, cfg.Model, cfg.MaxTokens, cfg.Temperature)

	// ──── Step 4: Initialize Handlers ────
	metaHandler := handlers.NewMetaHandler(serviceName, version)
	chatHandler := handlers.NewChatHandler(chatService)
	historyHandler := handlers.NewHistoryHandler(store)
	newsHandler := handlers.NewNewsHandler(newsService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(metaHandler, chatHandler, historyHandler, newsHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // completions can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ %s ready on http://localhost:%s", serviceName, cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
