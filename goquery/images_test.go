package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/storegen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageExtractor_ExtractImages(t *testing.T) {
	t.Parallel()

	e := goquery.NewImageExtractor()

	t.Run("extracts img src attributes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="https://cdn.example.com/product/shoe.jpg"></body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Equal(t, []string{"https://cdn.example.com/product/shoe.jpg"}, images)
	})

	t.Run("deduplicates on URL with query string stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"@type":"Product","image":"https://cdn.example.com/product/shoe.jpg?v=1"}</script>
<meta property="og:image" content="https://cdn.example.com/product/shoe.jpg?v=2">
</head></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		require.Len(t, images, 1)
		assert.Equal(t, "https://cdn.example.com/product/shoe.jpg?v=1", images[0])
	})

	t.Run("caps output at ten in scan order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 12; i++ {
			fmt.Fprintf(&b, `<img src="https://cdn.example.com/product/%d.jpg">`, i)
		}
		b.WriteString("</body></html>")

		images := e.ExtractImages(b.String(), "https://example.com/p/1")

		require.Len(t, images, 10)
		assert.Equal(t, "https://cdn.example.com/product/0.jpg", images[0])
		assert.Equal(t, "https://cdn.example.com/product/9.jpg", images[9])
	})

	t.Run("rejects logo URLs even when product-likely", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="https://cdn.example.com/product/logo-large.jpg"></body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Empty(t, images)
	})

	t.Run("rejects data URLs and tracking pixels", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="data:image/gif;base64,R0lGODlh">
<img src="https://cdn.example.com/1x1.gif">
<img src="https://cdn.example.com/pixel.png">
<img src="https://cdn.example.com/sprite-sheet.png">
</body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Empty(t, images)
	})

	t.Run("accepts first three candidates without product signals", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="https://cdn.example.com/a.jpg">
<img src="https://cdn.example.com/b.jpg">
<img src="https://cdn.example.com/c.jpg">
<img src="https://cdn.example.com/d.jpg">
</body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Equal(t, []string{
			"https://cdn.example.com/a.jpg",
			"https://cdn.example.com/b.jpg",
			"https://cdn.example.com/c.jpg",
		}, images)
	})

	t.Run("accepts size-in-URL and vendor naming signals", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="https://cdn.example.com/x.jpg">
<img src="https://cdn.example.com/y.jpg">
<img src="https://cdn.example.com/z.jpg">
<img src="https://cdn.example.com/photo-800x800.jpg">
<img src="https://cdn.example.com/photo._AC_SL1500_.jpg">
</body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		require.Len(t, images, 5)
		assert.Equal(t, "https://cdn.example.com/photo-800x800.jpg", images[3])
		assert.Equal(t, "https://cdn.example.com/photo._AC_SL1500_.jpg", images[4])
	})

	t.Run("resolves relative URLs against base", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="//cdn.example.com/product/a.jpg">
<img src="/images/product/b.jpg">
<img src="product/c.jpg">
</body></html>`
		images := e.ExtractImages(html, "https://shop.example.com/items/42")

		assert.Equal(t, []string{
			"https://cdn.example.com/product/a.jpg",
			"https://shop.example.com/images/product/b.jpg",
			"https://shop.example.com/items/product/c.jpg",
		}, images)
	})

	t.Run("reads lazy-load and zoom attributes and srcset", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-src="https://cdn.example.com/product/lazy.jpg"></div>
<a data-zoom-image="https://cdn.example.com/product/zoomed.jpg"></a>
<img src="https://cdn.example.com/product/base.jpg" srcset="https://cdn.example.com/product/sm.jpg 480w, https://cdn.example.com/product/lg.jpg 1200w">
</body></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Equal(t, []string{
			"https://cdn.example.com/product/base.jpg",
			"https://cdn.example.com/product/lazy.jpg",
			"https://cdn.example.com/product/zoomed.jpg",
			"https://cdn.example.com/product/sm.jpg",
			"https://cdn.example.com/product/lg.jpg",
		}, images)
	})

	t.Run("reads JSON-LD image arrays and url objects", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script type="application/ld+json">
{"@type":"Product","image":["https://cdn.example.com/product/1.jpg",{"url":"https://cdn.example.com/product/2.jpg"}]}
</script></head></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Equal(t, []string{
			"https://cdn.example.com/product/1.jpg",
			"https://cdn.example.com/product/2.jpg",
		}, images)
	})

	t.Run("ignores invalid JSON-LD blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{not json</script>
<meta property="og:image" content="https://cdn.example.com/product/og.jpg">
</head></html>`
		images := e.ExtractImages(html, "https://example.com/p/1")

		assert.Equal(t, []string{"https://cdn.example.com/product/og.jpg"}, images)
	})

	t.Run("returns empty for malformed base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="https://cdn.example.com/product/shoe.jpg"></body></html>`

		assert.Empty(t, e.ExtractImages(html, "not a url"))
		assert.Empty(t, e.ExtractImages(html, ""))
	})
}
