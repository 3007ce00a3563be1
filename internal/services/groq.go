package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"briefly-backend/internal/models"
)

// NewGroqClient creates a chat-completion client for Groq's OpenAI-compatible
// API. The concrete client is hidden behind llms.Model so the pipelines can be
// tested against a double.
func NewGroqClient(apiKey, baseURL, model string) (llms.Model, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq client: %w", err)
	}
	return client, nil
}

// toLLMRole maps a stored turn role onto the langchaingo message type.
func toLLMRole(role string) schema.ChatMessageType {
	switch role {
	case "assistant":
		return schema.ChatMessageTypeAI
	case "system":
		return schema.ChatMessageTypeSystem
	default:
		return schema.ChatMessageTypeHuman
	}
}

// usageFromChoice pulls the token counters out of a choice's generation info.
// The openai client reports them as ints, but decoded JSON may hand back
// float64, so both are accepted.
func usageFromChoice(choice *llms.ContentChoice) models.Usage {
	return models.Usage{
		PromptTokens:     infoInt(choice.GenerationInfo, "PromptTokens"),
		CompletionTokens: infoInt(choice.GenerationInfo, "CompletionTokens"),
		TotalTokens:      infoInt(choice.GenerationInfo, "TotalTokens"),
	}
}

func infoInt(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
