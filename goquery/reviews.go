package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storegen"
)

// MaxReviews caps the extractor output.
const MaxReviews = 10

// Ensure ReviewExtractor implements storegen.ReviewExtractor at compile time.
var _ storegen.ReviewExtractor = (*ReviewExtractor)(nil)

// ReviewExtractor mines customer reviews and testimonials out of raw
// HTML via six independent scans, from the most structured (JSON-LD) to
// the most heuristic (first-person blockquotes). It is stateless and
// safe for concurrent use.
type ReviewExtractor struct{}

// NewReviewExtractor creates a new ReviewExtractor.
func NewReviewExtractor() *ReviewExtractor {
	return &ReviewExtractor{}
}

var (
	// Generic review/testimonial body fragments: a marker class or
	// attribute name followed by 30-500 characters of element text.
	reviewBodyRE = regexp.MustCompile(`(?i)(?:review-?(?:body|text|content)|testimonial-?(?:text|content))[^>]*>([^<]{30,500})<`)

	// First-person language marks a blockquote as a testimonial rather
	// than a pull quote or citation.
	firstPersonRE = regexp.MustCompile(`(?i)\b(I|my|me|we|our|I'm|I've|I'd)\b`)
)

// Blockquote text length bounds for the testimonial heuristic.
const (
	minQuoteLength = 30
	maxQuoteLength = 500
)

// ExtractReviews runs the scans in order, merging every candidate
// through the shared accept/dedupe reducer: the length floor and
// truncation from the Review contract, uniqueness on the lowercase
// first-50 body prefix. Reviews that end up with no rating default to 5
// and no verified flag default to verified. Output order is scan order,
// capped at 10.
func (e *ReviewExtractor) ExtractReviews(html string) []*storegen.Review {
	set := newReviewSet()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return set.result()
	}

	// Scan 1: JSON-LD review structured data.
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		for _, item := range decodeJSONLD(sel.Text()) {
			for _, rev := range jsonLDReviews(item) {
				set.add(rev)
			}
		}
	})

	// Scan 2: the review-text class convention used by large
	// marketplaces; these are genuine purchase reviews.
	verified := true
	doc.Find(`[class*="review-text"]`).Each(func(_ int, sel *goquery.Selection) {
		set.add(&storegen.Review{
			Name:     storegen.ReviewerVerifiedBuyer,
			Text:     cleanText(sel.Text()),
			Verified: &verified,
		})
	})

	// Scan 3: review text stored in data attributes.
	doc.Find("[data-review-text], [data-review-body], [data-review-content]").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range []string{"data-review-text", "data-review-body", "data-review-content"} {
			if text, ok := sel.Attr(attr); ok {
				set.add(&storegen.Review{
					Name: storegen.ReviewerCustomer,
					Text: cleanText(text),
				})
			}
		}
	})

	// Scan 4: generic review/testimonial body fragments, matched over
	// the raw HTML since the marker may be a class, id or data
	// attribute on any element.
	for _, match := range reviewBodyRE.FindAllStringSubmatch(html, -1) {
		set.add(&storegen.Review{
			Name: storegen.ReviewerCustomer,
			Text: cleanText(match[1]),
		})
	}

	// Scan 5: blockquote testimonials, accepted only with first-person
	// language.
	doc.Find("blockquote").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if len(text) < minQuoteLength || len(text) > maxQuoteLength {
			return
		}
		if !firstPersonRE.MatchString(text) {
			return
		}
		set.add(&storegen.Review{
			Name: storegen.ReviewerCustomer,
			Text: text,
		})
	})

	// Scan 6: reviewer names collected separately and backfilled onto
	// placeholder reviews by position. Best-effort association: the two
	// scans may find different counts of elements in the source HTML.
	var names []string
	doc.Find(`[class*="reviewer-name"], [class*="author-name"], [class*="customer-name"]`).Each(func(_ int, sel *goquery.Selection) {
		if name := cleanText(sel.Text()); len(name) >= 2 && len(name) <= 50 {
			names = append(names, name)
		}
	})
	set.backfillNames(names)

	return set.result()
}

// jsonLDReviews reads the review field (single or array) of one JSON-LD
// item, plus the item itself when its @type is Review.
func jsonLDReviews(item map[string]any) []*storegen.Review {
	var reviews []*storegen.Review

	switch rev := item["review"].(type) {
	case map[string]any:
		reviews = append(reviews, reviewFromJSONLD(rev))
	case []any:
		for _, entry := range rev {
			if m, ok := entry.(map[string]any); ok {
				reviews = append(reviews, reviewFromJSONLD(m))
			}
		}
	}

	if asString(item["@type"]) == "Review" {
		reviews = append(reviews, reviewFromJSONLD(item))
	}

	return reviews
}

// reviewSet is the shared accept/dedupe reducer every scan feeds into.
type reviewSet struct {
	seen    map[string]struct{}
	reviews []*storegen.Review
}

func newReviewSet() *reviewSet {
	return &reviewSet{seen: make(map[string]struct{})}
}

func (s *reviewSet) add(r *storegen.Review) {
	if len(r.Text) < storegen.MinReviewLength {
		return
	}
	r.Truncate()

	key := r.Key()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.reviews = append(s.reviews, r)
}

// backfillNames assigns collected reviewer names, by index only, onto
// reviews still holding the generic placeholder name.
func (s *reviewSet) backfillNames(names []string) {
	for i, review := range s.reviews {
		if review.Name == storegen.ReviewerCustomer && i < len(names) {
			review.Name = names[i]
		}
	}
}

func (s *reviewSet) result() []*storegen.Review {
	reviews := s.reviews
	if len(reviews) > MaxReviews {
		reviews = reviews[:MaxReviews]
	}
	for _, r := range reviews {
		r.FillDefaults()
	}
	return reviews
}
