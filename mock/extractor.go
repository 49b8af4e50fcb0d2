package mock

import "github.com/fwojciec/storegen"

var _ storegen.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of storegen.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(html, baseURL string) []string
}

func (e *ImageExtractor) ExtractImages(html, baseURL string) []string {
	return e.ExtractImagesFn(html, baseURL)
}

var _ storegen.ReviewExtractor = (*ReviewExtractor)(nil)

// ReviewExtractor is a mock implementation of storegen.ReviewExtractor.
type ReviewExtractor struct {
	ExtractReviewsFn func(html string) []*storegen.Review
}

func (e *ReviewExtractor) ExtractReviews(html string) []*storegen.Review {
	return e.ExtractReviewsFn(html)
}
