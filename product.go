package storegen

// Product represents product data extracted by the analysis stage.
// Immutable once persisted; superseded only by re-running the pipeline.
type Product struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	Currency       string   `json:"currency"`
	Images         []string `json:"images"`
	Features       []string `json:"features"`
	Category       string   `json:"category"`
	TargetAudience string   `json:"targetAudience"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	return nil
}

// MaxProductImages caps the merged image list on a product record.
const MaxProductImages = 10

// FallbackProduct returns the fixed generic product record substituted
// when the analysis stage cannot parse the LLM response.
func FallbackProduct() *Product {
	return &Product{
		Name:        "Premium Product",
		Description: "An exceptional product sourced for quality and value.",
		Price:       "49.99",
		Currency:    "USD",
		Images:      []string{},
		Features: []string{
			"Premium quality materials",
			"Fast worldwide shipping",
			"30-day money back guarantee",
			"Eco-friendly packaging",
			"Award-winning design",
		},
		Category:       "General",
		TargetAudience: "Quality-conscious online shoppers",
	}
}

// MergeImages unions the scraped image URLs with the LLM-proposed ones.
// Scraped images come first, set semantics on the exact URL string, and
// the result is capped to MaxProductImages.
func MergeImages(scraped, proposed []string) []string {
	seen := make(map[string]struct{}, len(scraped)+len(proposed))
	merged := make([]string, 0, MaxProductImages)
	for _, list := range [][]string{scraped, proposed} {
		for _, url := range list {
			if url == "" {
				continue
			}
			if _, ok := seen[url]; ok {
				continue
			}
			seen[url] = struct{}{}
			merged = append(merged, url)
		}
	}
	if len(merged) > MaxProductImages {
		merged = merged[:MaxProductImages]
	}
	return merged
}
