package storegen_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/storegen"
	"github.com/stretchr/testify/assert"
)

func TestReview_Key(t *testing.T) {
	t.Parallel()

	r := &storegen.Review{Text: "Absolutely LOVE this thing, use it every single day without fail"}

	assert.Equal(t, strings.ToLower(r.Text[:50]), r.Key())
	assert.Len(t, r.Key(), 50)

	// Multi-byte text never splits a rune at the cut point: 50 bytes
	// lands mid-rune in three-byte text, so the key backs off to 48.
	multi := &storegen.Review{Text: strings.Repeat("日", 60)}
	assert.True(t, utf8.ValidString(multi.Key()))
	assert.Len(t, multi.Key(), 48)
}

func TestReview_Truncate(t *testing.T) {
	t.Parallel()

	r := &storegen.Review{Text: strings.Repeat("x", 600)}
	r.Truncate()

	assert.Len(t, r.Text, 500)
	assert.True(t, strings.HasSuffix(r.Text, "..."))

	// Multi-byte text stays valid UTF-8 ahead of the ellipsis marker.
	multi := &storegen.Review{Text: strings.Repeat("é", 300)}
	multi.Truncate()

	assert.True(t, utf8.ValidString(multi.Text))
	assert.True(t, strings.HasSuffix(multi.Text, "..."))
	assert.Equal(t, 496+3, len(multi.Text))
}

func TestReview_FillDefaults(t *testing.T) {
	t.Parallel()

	r := &storegen.Review{Text: "Great product, would buy again."}
	r.FillDefaults()

	assert.Equal(t, float64(5), r.Rating)
	assert.True(t, r.IsVerified())

	// Explicit values survive.
	unverified := false
	r2 := &storegen.Review{Text: "ok", Rating: 3, Verified: &unverified}
	r2.FillDefaults()

	assert.Equal(t, float64(3), r2.Rating)
	assert.False(t, r2.IsVerified())
}
