package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"briefly-backend/internal/models"
)

const newsSystemPrompt = "You are a news analyst. Summarize the provided news articles factually and concisely. Keep the summary under 200 words."

// NewsService searches the web for news about a keyword and asks the
// completion backend for a summary of the extracted articles. It shares no
// state with the chat pipeline.
type NewsService struct {
	client      llms.Model
	search      SearchProvider
	model       string
	maxTokens   int
	temperature float64
}

func NewNewsService(client llms.Model, search SearchProvider, model string, maxTokens int, temperature float64) *NewsService {
	return &NewsService{
		client:      client,
		search:      search,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Summarize runs the full search → extract → summarize pipeline. Search
// failures surface as ErrSearchUnavailable, an empty result set as
// ErrNoArticles (the backend is never called in that case), and summarization
// failures as ErrCompletion.
func (s *NewsService) Summarize(ctx context.Context, keyword string, maxResults int) (*models.NewsSearchResponse, error) {
	articles, err := s.search.Search(ctx, keyword+" news", maxResults)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("%w for keyword %q", ErrNoArticles, keyword)
	}

	log.Printf("News search for %q: %d articles extracted", keyword, len(articles))

	content := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(newsSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildNewsPrompt(keyword, articles))},
		},
	}

	resp, err := s.client.GenerateContent(ctx, content,
		llms.WithMaxTokens(s.maxTokens),
		llms.WithTemperature(s.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: news summarization: %v", ErrCompletion, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: news summarization: backend returned no choices", ErrCompletion)
	}

	choice := resp.Choices[0]

	return &models.NewsSearchResponse{
		Summary:  choice.Content,
		Keyword:  keyword,
		Articles: articles,
		Model:    s.model,
		Usage:    usageFromChoice(choice),
	}, nil
}

func buildNewsPrompt(keyword string, articles []models.NewsArticle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Summarize the latest news about %q based on these articles:\n\n", keyword))

	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Title: ")
		b.WriteString(a.Title)
		b.WriteString("\nSource: ")
		b.WriteString(a.Source)
		b.WriteString("\nSnippet: ")
		b.WriteString(a.Snippet)
	}

	return b.String()
}
