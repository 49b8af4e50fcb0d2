package storegen

import "context"

// Fetcher retrieves HTML from product URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// marketplace pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body as HTML text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
