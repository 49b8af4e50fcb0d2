package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/storegen"
)

// System prompts for the three LLM calls. Each demands bare JSON; the
// responses still get run through storegen.CleanJSON because models wrap
// output in fences anyway.
const (
	AnalysisSystem = `You are an expert e-commerce product analyst. Extract product information from the provided webpage HTML and URL. Return ONLY valid JSON, no markdown fences.`

	DesignSystem = `You are an elite e-commerce store designer and conversion rate optimization expert. You create stunning, high-converting single-product stores with unique layouts and themes. Return ONLY valid JSON, no markdown fences.`

	DomainSystem = `You are a domain name expert. Generate creative, brandable, and available-sounding domain names. Return ONLY valid JSON, no markdown fences.`
)

// MaxPromptReviews caps how many scraped reviews are passed to the
// design call as testimonial seed material.
const MaxPromptReviews = 6

// BuildAnalysisPrompt builds the user prompt for the product analysis call.
func BuildAnalysisPrompt(productURL, pageContent string) string {
	return fmt.Sprintf(`Analyze this product page and extract structured data.

URL: %s

Page content (HTML excerpt):
%s

Return this exact JSON structure:
{
  "name": "Product Name",
  "description": "Compelling 2-3 sentence sales description",
  "price": "29.99",
  "currency": "USD",
  "images": ["url1", "url2"],
  "features": ["feature 1", "feature 2", "feature 3", "feature 4", "feature 5"],
  "category": "Category Name",
  "targetAudience": "Description of ideal buyer"
}

If you can't extract certain fields, make intelligent guesses based on the URL and any available content. Always return valid JSON.`, productURL, pageContent)
}

// BuildDesignPrompt builds the user prompt for the store design call,
// seeding scraped reviews as testimonial material when available.
func BuildDesignPrompt(product *storegen.Product, reviews []*storegen.Review) (string, error) {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return "", storegen.Errorf(storegen.EINTERNAL, "marshaling product: %v", err)
	}

	var reviewsContext string
	if len(reviews) > 0 {
		if len(reviews) > MaxPromptReviews {
			reviews = reviews[:MaxPromptReviews]
		}
		reviewsJSON, err := json.MarshalIndent(reviews, "", "  ")
		if err != nil {
			return "", storegen.Errorf(storegen.EINTERNAL, "marshaling reviews: %v", err)
		}
		reviewsContext = fmt.Sprintf("\n\nSCRAPED REAL REVIEWS FROM THE PRODUCT PAGE (use these as testimonials, clean up the text if needed):\n%s", reviewsJSON)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Create a complete store configuration for this product:

Product: %s%s

`, productJSON, reviewsContext)
	b.WriteString(designInstructions)
	return b.String(), nil
}

// designInstructions is the fixed tail of the design prompt: theme and
// layout menus, the full output schema and pairing guidelines.
const designInstructions = `Generate a JSON store config. Be creative with the store name — don't just use the product name. Pick a brandable, memorable store name that fits the niche.

IMPORTANT: Choose the most appropriate THEME and LAYOUTS based on the product type and target audience:

THEME OPTIONS (pick one):
- "minimal" - Clean, lots of whitespace, subtle colors, modern sans-serif fonts. Best for: tech, premium, professional products
- "bold" - High contrast, vibrant colors, strong typography, dynamic. Best for: youth, sports, energy products
- "luxury" - Dark/gold tones, serif fonts, elegant spacing, premium feel. Best for: jewelry, fashion, high-end items
- "playful" - Bright colors, rounded shapes, fun fonts, friendly. Best for: kids, pets, casual lifestyle products
- "natural" - Earth tones, organic shapes, warm feel. Best for: eco, wellness, food, handmade products

HERO LAYOUT OPTIONS (pick one):
- "centered" - Centered text, product below, classic layout
- "split" - Text on left, product image on right (50/50 split)
- "fullscreen" - Large background image with overlay text
- "minimal" - Just headline and CTA, very clean
- "video-style" - Designed for video background (dark overlay)

TESTIMONIAL LAYOUT OPTIONS (pick one):
- "cards" - Individual cards in a grid
- "carousel" - Single testimonial with arrows to navigate
- "stacked" - Vertical stack with large quotes
- "minimal" - Simple text with small avatars inline
- "featured" - One large featured testimonial + smaller ones

SECTION ORDER: Choose which sections to include and in what order. Not all sections are required.
Available sections: hero, urgency, benefits, features, testimonials, comparison, gallery, faq, finalCta

Return this exact JSON structure:
{
  "storeName": "BrandName",
  "tagline": "Short memorable tagline",
  "theme": "minimal|bold|luxury|playful|natural",
  "layouts": {
    "hero": "centered|split|fullscreen|minimal|video-style",
    "testimonials": "cards|carousel|stacked|minimal|featured"
  },
  "sectionOrder": ["hero", "urgency", "benefits", "testimonials", "features", "faq", "finalCta"],
  "colorScheme": {
    "primary": "#hex",
    "secondary": "#hex",
    "accent": "#hex",
    "background": "#hex",
    "surface": "#hex",
    "text": "#hex",
    "textMuted": "#hex"
  },
  "fonts": {
    "heading": "Google Font Name",
    "body": "Google Font Name"
  },
  "hero": {
    "headline": "Attention-grabbing headline",
    "subheadline": "Supporting value proposition sentence",
    "ctaText": "CTA button text",
    "badgeText": "Optional badge like FREE SHIPPING or NEW",
    "backgroundImage": "optional URL or null"
  },
  "benefits": [
    { "icon": "emoji", "title": "Benefit Title", "description": "Short benefit description" },
    { "icon": "emoji", "title": "Benefit Title", "description": "Short benefit description" },
    { "icon": "emoji", "title": "Benefit Title", "description": "Short benefit description" },
    { "icon": "emoji", "title": "Benefit Title", "description": "Short benefit description" }
  ],
  "testimonials": [
    { "name": "First L.", "text": "Actual review text from customer", "rating": 5, "verified": true, "title": "Optional job title", "image": "optional avatar URL" },
    { "name": "First L.", "text": "Actual review text from customer", "rating": 5, "verified": true },
    { "name": "First L.", "text": "Actual review text from customer", "rating": 4, "verified": true }
  ],
  "comparison": {
    "enabled": true or false,
    "title": "Why Choose Us?",
    "us": { "name": "Our Product", "points": ["Feature 1", "Feature 2", "Feature 3"] },
    "them": { "name": "Others", "points": ["Lacks X", "Expensive", "Poor quality"] }
  },
  "gallery": {
    "enabled": true or false,
    "title": "See It In Action",
    "images": ["url1", "url2", "url3"]
  },
  "faq": [
    { "question": "Common question?", "answer": "Helpful answer" },
    { "question": "Common question?", "answer": "Helpful answer" },
    { "question": "Common question?", "answer": "Helpful answer" }
  ],
  "urgency": {
    "stockText": "Only X left in stock!",
    "offerText": "Limited time: XX% off today only",
    "timerEnabled": true,
    "style": "banner|floating|inline"
  },
  "footer": {
    "copyright": "© 2025 StoreName. All rights reserved.",
    "links": [
      { "label": "Privacy Policy", "href": "/privacy" },
      { "label": "Terms of Service", "href": "/terms" },
      { "label": "Contact Us", "href": "/contact" },
      { "label": "Shipping Info", "href": "/shipping" }
    ]
  }
}

If scraped reviews were provided above, use them as the testimonials: clean up the text, format names as "First L.", keep real ratings. If none were provided, generate realistic-sounding testimonials based on product benefits.

GUIDELINES:
- For luxury products, use "luxury" theme with "split" or "fullscreen" hero and "featured" testimonials
- For tech products, use "minimal" theme with "centered" hero and "cards" testimonials
- For kids/fun products, use "playful" theme with "fullscreen" hero and "carousel" testimonials
- Include "comparison" section for products with clear competitors
- Include "gallery" only if product has multiple use cases or angles
- Order sections strategically: urgency early for impulse buys, testimonials early for trust-building`

// BuildDomainPrompt builds the user prompt for the domain suggestion call.
func BuildDomainPrompt(storeName string, product *storegen.Product) string {
	return fmt.Sprintf(`Generate 5 domain name suggestions for this store:

Store Name: %s
Product: %s
Category: %s
Target Audience: %s

Rules:
- Short (max 15 characters before TLD)
- Easy to spell and remember
- Brandable and professional
- Mix of .com, .co, .shop, .store TLDs
- Avoid hyphens and numbers

Return this exact JSON:
{
  "domains": [
    "domain1.com",
    "domain2.co",
    "domain3.shop",
    "domain4.store",
    "domain5.com"
  ]
}`, storeName, product.Name, product.Category, product.TargetAudience)
}
