package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storegen"
)

// MaxImages caps the extractor output.
const MaxImages = 10

// Ensure ImageExtractor implements storegen.ImageExtractor at compile time.
var _ storegen.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor mines candidate product-image URLs out of raw HTML via
// six independent scans. It is stateless and safe for concurrent use.
type ImageExtractor struct{}

// NewImageExtractor creates a new ImageExtractor.
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{}
}

var (
	// data-large-image, data-zoom-image, data-hires-src, data-original, …
	largeAttrRE = regexp.MustCompile(`^data-(?:large|zoom|hires|original)-?(?:image|src)?$`)

	// Size-in-URL convention like 500x500.
	sizeInURLRE = regexp.MustCompile(`\d{3,}x\d{3,}`)

	// Vendor large-image naming convention like _AC_SL1500.
	vendorSizeRE = regexp.MustCompile(`_[A-Z]{2}\d{3,}`)
)

// Substrings that mark a URL as navigation chrome rather than a product
// photo. Checked case-sensitively on the raw attribute value, as markets
// author them lowercase.
var rejectFragments = []string{"icon", "logo", "sprite", "1x1", "pixel"}

// Keywords that mark a URL as a likely product image.
var productKeywords = []string{"product", "item", "goods", "img", "large", "zoom", "main"}

// ExtractImages runs the six scans in order (img src, data-src,
// data-large/zoom/hires/original attributes, srcset candidates, JSON-LD
// image fields, Open Graph images), merging every candidate through the
// shared filter/normalize/dedupe reducer. Output order is scan order,
// capped at 10. A baseURL that is not an absolute URL yields an empty
// result.
func (e *ImageExtractor) ExtractImages(html, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil
	}

	set := newImageSet(base)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return set.result()
	}

	// Scan a: standard img tags.
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		set.add(sel.AttrOr("src", ""))
	})

	// Scan b: lazy-load attributes.
	doc.Find("[data-src]").Each(func(_ int, sel *goquery.Selection) {
		set.add(sel.AttrOr("data-src", ""))
	})

	// Scan c: vendor large/zoom image attributes. The attribute name
	// varies per storefront engine, so every attribute is checked.
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range sel.Nodes[0].Attr {
			if largeAttrRE.MatchString(attr.Key) {
				set.add(attr.Val)
			}
		}
	})

	// Scan d: every srcset candidate, not just the largest.
	doc.Find("[srcset]").Each(func(_ int, sel *goquery.Selection) {
		for _, candidate := range strings.Split(sel.AttrOr("srcset", ""), ",") {
			if fields := strings.Fields(candidate); len(fields) > 0 {
				set.add(fields[0])
			}
		}
	})

	// Scan e: JSON-LD image fields.
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		for _, item := range decodeJSONLD(sel.Text()) {
			for _, u := range imageURLs(item["image"]) {
				set.add(u)
			}
		}
	})

	// Scan f: Open Graph images.
	doc.Find(`meta[property="og:image"]`).Each(func(_ int, sel *goquery.Selection) {
		set.add(sel.AttrOr("content", ""))
	})

	return set.result()
}

// imageSet is the shared filter/normalize/dedupe reducer every scan
// feeds into.
type imageSet struct {
	base *url.URL
	seen map[string]struct{}
	urls []string
}

func newImageSet(base *url.URL) *imageSet {
	return &imageSet{base: base, seen: make(map[string]struct{})}
}

// add filters, resolves and deduplicates one candidate. Candidates that
// don't look like product images are still accepted while fewer than 3
// images have been collected, so sparse pages yield something usable.
func (s *imageSet) add(src string) {
	if src == "" || strings.HasPrefix(src, "data:") {
		return
	}
	for _, fragment := range rejectFragments {
		if strings.Contains(src, fragment) {
			return
		}
	}

	full := s.resolve(src)
	if full == "" {
		return
	}

	// Dedupe on the URL with any query string stripped. A rejected
	// candidate still claims its key, as repeats add no information.
	key := full
	if i := strings.Index(full, "?"); i >= 0 {
		key = full[:i]
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}

	if likelyProductImage(full) || len(s.urls) < 3 {
		s.urls = append(s.urls, full)
	}
}

// resolve turns scheme-relative, root-relative and plain-relative URLs
// into absolute ones.
func (s *imageSet) resolve(src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return s.base.Scheme + "://" + s.base.Host + src
	case !strings.HasPrefix(src, "http"):
		ref, err := url.Parse(src)
		if err != nil {
			return ""
		}
		return s.base.ResolveReference(ref).String()
	}
	return src
}

func (s *imageSet) result() []string {
	if len(s.urls) > MaxImages {
		return s.urls[:MaxImages]
	}
	return s.urls
}

// likelyProductImage reports whether the URL carries any of the product
// keyword, size-in-URL or vendor naming signals.
func likelyProductImage(u string) bool {
	for _, keyword := range productKeywords {
		if strings.Contains(u, keyword) {
			return true
		}
	}
	return sizeInURLRE.MatchString(u) || vendorSizeRE.MatchString(u)
}
