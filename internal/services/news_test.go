package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"briefly-backend/internal/models"
)

// fakeSearch is a test double for SearchProvider.
type fakeSearch struct {
	articles  []models.NewsArticle
	err       error
	lastQuery string
}

func (f *fakeSearch) Search(ctx context.Context, query string, maxResults int) ([]models.NewsArticle, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	if len(f.articles) > maxResults {
		return f.articles[:maxResults], nil
	}
	return f.articles, nil
}

func sampleArticles() []models.NewsArticle {
	return []models.NewsArticle{
		{Title: "Go 1.25 released", URL: "https://go.dev/blog/go1.25", Snippet: "The Go team announced...", Source: "go.dev"},
		{Title: "Generics adoption grows", URL: "https://example.com/generics", Snippet: "Survey results show...", Source: "example.com"},
	}
}

func newTestNewsService(model llms.Model, search SearchProvider) *NewsService {
	return NewNewsService(model, search, "test-model", 256, 0.5)
}

func TestNewsService_Summarize(t *testing.T) {
	model := &fakeModel{generateFunc: func(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
		return textResponse("Two Go stories made the rounds this week."), nil
	}}
	search := &fakeSearch{articles: sampleArticles()}
	svc := newTestNewsService(model, search)

	resp, err := svc.Summarize(context.Background(), "golang", 5)
	require.NoError(t, err)

	assert.Equal(t, "Two Go stories made the rounds this week.", resp.Summary)
	assert.Equal(t, "golang", resp.Keyword)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, 20, resp.Usage.TotalTokens)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, "Go 1.25 released", resp.Articles[0].Title)

	// The search query is "<keyword> news".
	assert.Equal(t, "golang news", search.lastQuery)
}

func TestNewsService_Summarize_PromptContainsArticles(t *testing.T) {
	model := &fakeModel{}
	svc := newTestNewsService(model, &fakeSearch{articles: sampleArticles()})

	_, err := svc.Summarize(context.Background(), "golang", 5)
	require.NoError(t, err)

	require.Len(t, model.lastMessages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.lastMessages[0].Role)
	assert.Contains(t, partText(t, model.lastMessages[0]), "under 200 words")

	userPrompt := partText(t, model.lastMessages[1])
	assert.Contains(t, userPrompt, `"golang"`)
	assert.Contains(t, userPrompt, "Title: Go 1.25 released")
	assert.Contains(t, userPrompt, "Source: go.dev")
	assert.Contains(t, userPrompt, "Snippet: The Go team announced...")
}

func TestNewsService_Summarize_NoArticles(t *testing.T) {
	model := &fakeModel{}
	svc := newTestNewsService(model, &fakeSearch{})

	_, err := svc.Summarize(context.Background(), "obscuretopic", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoArticles)
	assert.Contains(t, err.Error(), "obscuretopic")

	// The completion backend is never invoked.
	assert.Equal(t, 0, model.calls)
}

func TestNewsService_Summarize_SearchFailure(t *testing.T) {
	model := &fakeModel{}
	searchErr := fmt.Errorf("%w: connection reset", ErrSearchUnavailable)
	svc := newTestNewsService(model, &fakeSearch{err: searchErr})

	_, err := svc.Summarize(context.Background(), "golang", 5)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
	assert.NotErrorIs(t, err, ErrCompletion)
	assert.Equal(t, 0, model.calls)
}

func TestNewsService_Summarize_CompletionFailure(t *testing.T) {
	model := &fakeModel{generateFunc: func(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
		return nil, errors.New("rate limited upstream")
	}}
	svc := newTestNewsService(model, &fakeSearch{articles: sampleArticles()})

	_, err := svc.Summarize(context.Background(), "golang", 5)
	assert.ErrorIs(t, err, ErrCompletion)
	assert.NotErrorIs(t, err, ErrSearchUnavailable)
}
