package storegen

// ImageExtractor mines candidate product-image URLs out of raw HTML.
type ImageExtractor interface {
	// ExtractImages scans html and returns up to 10 absolute image URLs
	// in scan order. Relative URLs are resolved against baseURL. A
	// malformed baseURL yields an empty result, not an error.
	ExtractImages(html, baseURL string) []string
}

// ReviewExtractor mines candidate customer reviews out of raw HTML.
type ReviewExtractor interface {
	// ExtractReviews scans html and returns up to 10 normalized reviews
	// in scan order.
	ExtractReviews(html string) []*Review
}
