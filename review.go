package storegen

import (
	"strings"
	"unicode/utf8"
)

// Review represents a customer review mined from raw product-page HTML.
// Reviews are transient: they seed the design stage's testimonials and
// are not persisted on their own.
type Review struct {
	Name     string  `json:"name"`
	Text     string  `json:"text"`
	Rating   float64 `json:"rating,omitempty"`
	Date     string  `json:"date,omitempty"`
	Title    string  `json:"title,omitempty"`
	Verified *bool   `json:"verified,omitempty"`
}

// Review body length bounds applied by the shared accept filter.
const (
	MinReviewLength      = 20
	MaxReviewLength      = 500
	reviewTruncateLength = 497
)

// Placeholder reviewer names assigned by scans that cannot attribute the
// review text to a real name.
const (
	ReviewerCustomer      = "Customer"
	ReviewerVerifiedBuyer = "Verified Buyer"
)

// Key returns the review's uniqueness key: the lowercase of the first 50
// characters of the body text.
func (r *Review) Key() string {
	return strings.ToLower(cutRunes(r.Text, 50))
}

// Truncate caps the body text at 497 characters plus an ellipsis marker.
func (r *Review) Truncate() {
	if len(r.Text) > MaxReviewLength {
		r.Text = cutRunes(r.Text, reviewTruncateLength) + "..."
	}
}

// cutRunes cuts s to at most n bytes without splitting a UTF-8 rune.
func cutRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// FillDefaults fills a missing rating with 5 and a missing verified flag
// with true.
func (r *Review) FillDefaults() {
	if r.Rating == 0 {
		r.Rating = 5
	}
	if r.Verified == nil {
		verified := true
		r.Verified = &verified
	}
}

// IsVerified reports the verified flag, treating unset as true.
func (r *Review) IsVerified() bool {
	return r.Verified == nil || *r.Verified
}
