package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Groq API
	GroqAPIKey  string
	GroqBaseURL string

	// Completion parameters (fixed server-side, not overridable per request)
	Model        string
	MaxTokens    int
	Temperature  float64
	SystemPrompt string

	// News search
	SearchTimeoutSeconds int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GroqAPIKey:           mustGetEnv("GROQ_API_KEY"),
		GroqBaseURL:          getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:                getEnvOrDefault("GROQ_MODEL", "mixtral-8x7b-32768"),
		MaxTokens:            getEnvAsIntOrDefault("GROQ_MAX_TOKENS", 1024),
		Temperature:          getEnvAsFloatOrDefault("GROQ_TEMPERATURE", 0.7),
		SystemPrompt:         getEnvOrDefault("SYSTEM_PROMPT", "You are a helpful assistant. Answer clearly and concisely."),
		SearchTimeoutSeconds: getEnvAsIntOrDefault("SEARCH_TIMEOUT_SECONDS", 10),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
