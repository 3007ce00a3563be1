package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"briefly-backend/internal/models"
)

// SearchProvider returns structured articles for a query. It isolates the
// markup-scraping details from the news pipeline so the fragile parsing can be
// swapped or faked independently.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.NewsArticle, error)
}

var sourceHostPattern = regexp.MustCompile(`https?://(?:www\.)?([^/]+)`)

// DuckDuckGoProvider scrapes the DuckDuckGo HTML results page. The page
// renders each hit as a ".result" block with a ".result__a" title link and a
// ".result__snippet"; links are usually redirect wrappers carrying the real
// target in a "uddg" query parameter.
type DuckDuckGoProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewDuckDuckGoProvider(timeout time.Duration) *DuckDuckGoProvider {
	return &DuckDuckGoProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://html.duckduckgo.com/html/",
	}
}

func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, maxResults int) ([]models.NewsArticle, error) {
	searchURL := p.baseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: search returned status %d", ErrSearchUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse results page: %v", ErrSearchUnavailable, err)
	}

	var articles []models.NewsArticle
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		titleLink := sel.Find(".result__a").First()
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())
		title := strings.TrimSpace(titleLink.Text())

		// Blocks missing either element are skipped, not counted.
		if title == "" || snippet == "" {
			return true
		}

		href, _ := titleLink.Attr("href")
		articleURL := resolveRedirectURL(href)

		articles = append(articles, models.NewsArticle{
			Title:   title,
			URL:     articleURL,
			Snippet: snippet,
			Source:  sourceFromURL(articleURL),
		})
		return len(articles) < maxResults
	})

	return articles, nil
}

// resolveRedirectURL unwraps DuckDuckGo's "/l/?uddg=<encoded-target>" redirect
// links. Anything else is returned unchanged.
func resolveRedirectURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// sourceFromURL derives the article's source from the host component of its
// URL, or "Unknown" when the URL does not match.
func sourceFromURL(rawURL string) string {
	if m := sourceHostPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return "Unknown"
}
