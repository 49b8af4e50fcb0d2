// Package pipeline orchestrates store generation: scrape the product
// page, analyze it into a product record, and design the store
// configuration. It coordinates the fetcher, the HTML extractors, the
// LLM completer and the store service.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/storegen"
	"golang.org/x/sync/errgroup"
)

// MaxPageContent is the byte budget for page HTML passed to the
// analysis prompt. The full HTML is still scanned by the extractors;
// only the prompt excerpt is truncated.
const MaxPageContent = 15000

// parsePolicy is a stage's reaction to an unparseable LLM response.
type parsePolicy int

const (
	parseFallback parsePolicy = iota // substitute the stage's fallback value
	parseFatal                       // fail the whole run
)

// llmStage couples a stage's system prompt with its parse policy. The
// asymmetry is deliberate: a product record and a domain list have safe
// generic fallbacks, a full store configuration does not.
type llmStage struct {
	system         string
	onParseFailure parsePolicy
	fatalMessage   string // surfaced when onParseFailure is parseFatal
}

var (
	analysisStage = llmStage{system: AnalysisSystem, onParseFailure: parseFallback}
	designStage   = llmStage{system: DesignSystem, onParseFailure: parseFatal,
		fatalMessage: "Failed to parse store configuration from AI"}
	domainStage = llmStage{system: DomainSystem, onParseFailure: parseFallback}
)

// errUnparseable marks a parse failure on a parseFallback stage; the
// caller substitutes its fallback value.
var errUnparseable = errors.New("unparseable response")

// complete runs one LLM stage: call the completer and decode the
// response into v according to the stage's parse policy.
func (g *Generator) complete(ctx context.Context, st llmStage, prompt string, v any) error {
	raw, err := g.Completer.Complete(ctx, st.system, prompt)
	if err != nil {
		return err
	}
	if err := storegen.ExtractJSON(raw, v); err != nil {
		if st.onParseFailure == parseFallback {
			return fmt.Errorf("%w: %v", errUnparseable, err)
		}
		return storegen.Errorf(storegen.EINTERNAL, "%s", st.fatalMessage)
	}
	return nil
}

// Generator runs the generation pipeline for a store.
type Generator struct {
	Stores    storegen.StoreService
	Fetcher   storegen.Fetcher
	Images    storegen.ImageExtractor
	Reviews   storegen.ReviewExtractor
	Completer storegen.Completer
	Logger    *slog.Logger
}

// Generate runs the full pipeline for the store with the given ID. It
// claims the store first, so a second call while a run is in flight
// returns ECONFLICT without touching the store. Any failure inside the
// run is persisted as StatusError with a message before being returned;
// the store never remains stuck in an in-flight status.
func (g *Generator) Generate(ctx context.Context, id string) error {
	store, err := g.Stores.FindStoreByID(ctx, id)
	if err != nil {
		return err
	}

	if err := g.Stores.BeginGeneration(ctx, store.ID); err != nil {
		return err
	}

	// Without a completer the pipeline cannot proceed past scraping, so
	// fail before doing any work.
	if g.Completer == nil {
		msg := "missing LLM provider credentials"
		if err := g.Stores.UpdateStatus(ctx, store.ID, storegen.StatusError, msg); err != nil {
			return err
		}
		return storegen.Errorf(storegen.EINVALID, "%s", msg)
	}

	if err := g.run(ctx, store); err != nil {
		msg := storegen.ErrorMessage(err)
		if uerr := g.Stores.UpdateStatus(ctx, store.ID, storegen.StatusError, msg); uerr != nil {
			return uerr
		}
		return err
	}

	return nil
}

func (g *Generator) run(ctx context.Context, store *storegen.Store) error {
	pageContent, images, reviews := g.scrape(ctx, store)

	product, err := g.analyze(ctx, store, pageContent, images)
	if err != nil {
		return err
	}

	config, err := g.design(ctx, product, reviews)
	if err != nil {
		return err
	}

	domains, err := g.suggestDomains(ctx, config, product)
	if err != nil {
		return err
	}

	return g.Stores.SaveStoreConfig(ctx, store.ID, config, domains, "")
}

// scrape fetches the product page and mines it for images and reviews.
// A fetch failure degrades to a URL-only placeholder rather than
// aborting: the analysis stage can still guess from URL patterns.
func (g *Generator) scrape(ctx context.Context, store *storegen.Store) (string, []string, []*storegen.Review) {
	html, err := g.Fetcher.Fetch(ctx, store.ProductURL)
	if err != nil {
		g.logger().Warn("product page fetch failed", "url", store.ProductURL, "err", err)
		placeholder := fmt.Sprintf("URL: %s (could not fetch — generate based on URL patterns)", store.ProductURL)
		return placeholder, nil, nil
	}

	// The extractors are independent single-pass scans over the same
	// document; run them concurrently.
	var images []string
	var reviews []*storegen.Review
	var eg errgroup.Group
	eg.Go(func() error {
		images = g.Images.ExtractImages(html, store.ProductURL)
		return nil
	})
	eg.Go(func() error {
		reviews = g.Reviews.ExtractReviews(html)
		return nil
	})
	_ = eg.Wait()

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(html))
	if err := g.Stores.SavePageHash(ctx, store.ID, hash); err != nil {
		g.logger().Warn("saving page hash failed", "store", store.ID, "err", err)
	}

	return truncate(html, MaxPageContent), images, reviews
}

// analyze asks the LLM for a structured product record. An unparseable
// response degrades to the fixed fallback product; the scraped images
// are merged in either way.
func (g *Generator) analyze(ctx context.Context, store *storegen.Store, pageContent string, images []string) (*storegen.Product, error) {
	if err := g.Stores.UpdateStatus(ctx, store.ID, storegen.StatusAnalyzing, ""); err != nil {
		return nil, err
	}

	product := &storegen.Product{}
	if err := g.complete(ctx, analysisStage, BuildAnalysisPrompt(store.ProductURL, pageContent), product); err != nil {
		if !errors.Is(err, errUnparseable) {
			return nil, err
		}
		g.logger().Warn("product analysis not parseable, using fallback", "store", store.ID, "err", err)
		product = storegen.FallbackProduct()
	}

	product.Images = storegen.MergeImages(images, product.Images)

	if err := g.Stores.SaveProductData(ctx, store.ID, product); err != nil {
		return nil, err
	}

	return product, nil
}

// design asks the LLM for the full store configuration. Unlike the
// analysis stage there is no usable fallback here: a store config that
// cannot be parsed fails the run.
func (g *Generator) design(ctx context.Context, product *storegen.Product, reviews []*storegen.Review) (*storegen.StoreConfig, error) {
	prompt, err := BuildDesignPrompt(product, reviews)
	if err != nil {
		return nil, err
	}

	config := &storegen.StoreConfig{}
	if err := g.complete(ctx, designStage, prompt, config); err != nil {
		return nil, err
	}

	return config, nil
}

// suggestDomains asks the LLM for domain name ideas. An unparseable
// response degrades to the deterministic slug-based list; a failed call
// fails the run like any other stage.
func (g *Generator) suggestDomains(ctx context.Context, config *storegen.StoreConfig, product *storegen.Product) ([]string, error) {
	var parsed struct {
		Domains []string `json:"domains"`
	}
	if err := g.complete(ctx, domainStage, BuildDomainPrompt(config.StoreName, product), &parsed); err != nil {
		if !errors.Is(err, errUnparseable) {
			return nil, err
		}
		g.logger().Warn("domain suggestions not parseable, using fallback", "err", err)
		return storegen.FallbackDomains(config.StoreName), nil
	}

	// A parseable response with no domains field stays empty. Only a
	// broken response falls back to the generated list.
	if parsed.Domains == nil {
		return []string{}, nil
	}
	return parsed.Domains, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
