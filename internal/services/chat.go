package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"briefly-backend/internal/models"
)

// ChatService forwards user messages to the completion backend, feeding it the
// full conversation history on every call.
type ChatService struct {
	client       llms.Model
	store        *ConversationStore
	model        string
	maxTokens    int
	temperature  float64
	systemPrompt string
}

func NewChatService(client llms.Model, store *ConversationStore, model string, maxTokens int, temperature float64, systemPrompt string) *ChatService {
	return &ChatService{
		client:       client,
		store:        store,
		model:        model,
		maxTokens:    maxTokens,
		temperature:  temperature,
		systemPrompt: systemPrompt,
	}
}

// Store returns the conversation store backing this service.
func (s *ChatService) Store() *ConversationStore {
	return s.store
}

// Send appends the user message to the conversation log, requests a completion
// over the full history, appends the assistant reply and returns it with the
// backend's token usage.
//
// The user turn is NOT rolled back when the completion call fails: a failed
// request leaves the question in the history and it is re-sent as context on
// the next call. Known inconsistency, kept on purpose.
func (s *ChatService) Send(ctx context.Context, message string) (*models.ChatResponse, error) {
	s.store.Append(models.ChatMessage{Role: "user", Content: message})

	history, _ := s.store.Snapshot()
	content := make([]llms.MessageContent, 0, len(history)+1)
	content = append(content, llms.MessageContent{
		Role:  schema.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(s.systemPrompt)},
	})
	for _, turn := range history {
		content = append(content, llms.MessageContent{
			Role:  toLLMRole(turn.Role),
			Parts: []llms.ContentPart{llms.TextPart(turn.Content)},
		})
	}

	resp, err := s.client.GenerateContent(ctx, content,
		llms.WithMaxTokens(s.maxTokens),
		llms.WithTemperature(s.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: backend returned no choices", ErrCompletion)
	}

	choice := resp.Choices[0]
	usage := usageFromChoice(choice)
	if choice.StopReason != "" && choice.StopReason != "stop" {
		log.Printf("WARNING: completion stopped early: %s", choice.StopReason)
	}

	s.store.Append(models.ChatMessage{Role: "assistant", Content: choice.Content})

	return &models.ChatResponse{
		Content:            choice.Content,
		Model:              s.model,
		Usage:              usage,
		ConversationLength: s.store.Len(),
	}, nil
}
