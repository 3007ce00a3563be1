package models

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// Usage holds the token counters reported by the completion backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the reply from a chat completion.
type ChatResponse struct {
	Content            string `json:"content"`
	Model              string `json:"model"`
	Usage              Usage  `json:"usage"`
	ConversationLength int    `json:"conversation_length"`
}

// HistoryResponse is the full conversation log with derived counts.
type HistoryResponse struct {
	ConversationHistory []ChatMessage `json:"conversation_history"`
	MessageCount        int           `json:"message_count"`
	UserMessages        int           `json:"user_messages"`
	AssistantMessages   int           `json:"assistant_messages"`
}
