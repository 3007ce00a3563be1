package models

// NewsSearchRequest is the payload sent to the news-search endpoint.
// MaxResults defaults to 5 when omitted and must be at least 1.
type NewsSearchRequest struct {
	Keyword    string `json:"keyword"`
	MaxResults *int   `json:"max_results"`
}

// NewsArticle is one extracted search result.
type NewsArticle struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// NewsSearchResponse is the summarized result of a news search.
type NewsSearchResponse struct {
	Summary  string        `json:"summary"`
	Keyword  string        `json:"keyword"`
	Articles []NewsArticle `json:"articles"`
	Model    string        `json:"model"`
	Usage    Usage         `json:"usage"`
}
