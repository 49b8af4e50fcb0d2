// Package rod provides a browser-based implementation of storegen.Fetcher
// for product pages that render their content with JavaScript.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/storegen"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for a single page fetch.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements storegen.Fetcher at compile time.
var _ storegen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Use this instead of http.Fetcher for storefronts that ship an empty
// shell and hydrate the product client-side.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a single fetch.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{browser: browser, timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
