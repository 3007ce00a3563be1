package services

import "errors"

// Sentinel errors for the failure kinds the handlers map to HTTP statuses.
// Pipelines wrap these with fmt.Errorf("%w: ...") so callers can use errors.Is
// while the message keeps the phase-specific detail.
var (
	// ErrCompletion covers any failure calling or parsing the
	// chat-completion backend.
	ErrCompletion = errors.New("chat completion failed")

	// ErrSearchUnavailable covers network or HTTP failures reaching the
	// search backend.
	ErrSearchUnavailable = errors.New("search backend unavailable")

	// ErrNoArticles means the search succeeded but yielded zero usable
	// articles.
	ErrNoArticles = errors.New("no news articles found")
)
