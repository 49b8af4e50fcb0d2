package storegen

import "strings"

// Theme is the overall visual style of a generated store.
type Theme string

// Theme options the design stage may choose from.
const (
	ThemeMinimal Theme = "minimal"
	ThemeBold    Theme = "bold"
	ThemeLuxury  Theme = "luxury"
	ThemePlayful Theme = "playful"
	ThemeNatural Theme = "natural"
)

// HeroLayout selects the hero section layout.
type HeroLayout string

// Hero layout options.
const (
	HeroCentered   HeroLayout = "centered"
	HeroSplit      HeroLayout = "split"
	HeroFullscreen HeroLayout = "fullscreen"
	HeroMinimal    HeroLayout = "minimal"
	HeroVideoStyle HeroLayout = "video-style"
)

// TestimonialLayout selects the testimonials section layout.
type TestimonialLayout string

// Testimonial layout options.
const (
	TestimonialCards    TestimonialLayout = "cards"
	TestimonialCarousel TestimonialLayout = "carousel"
	TestimonialStacked  TestimonialLayout = "stacked"
	TestimonialMinimal  TestimonialLayout = "minimal"
	TestimonialFeatured TestimonialLayout = "featured"
)

// Section identifiers valid in StoreConfig.SectionOrder. Unknown
// identifiers are ignored at render time, not rejected.
const (
	SectionHero         = "hero"
	SectionUrgency      = "urgency"
	SectionBenefits     = "benefits"
	SectionFeatures     = "features"
	SectionTestimonials = "testimonials"
	SectionComparison   = "comparison"
	SectionGallery      = "gallery"
	SectionFAQ          = "faq"
	SectionFinalCTA     = "finalCta"
)

// KnownSection reports whether id is a renderable section identifier.
func KnownSection(id string) bool {
	switch id {
	case SectionHero, SectionUrgency, SectionBenefits, SectionFeatures,
		SectionTestimonials, SectionComparison, SectionGallery,
		SectionFAQ, SectionFinalCTA:
		return true
	}
	return false
}

// ColorScheme holds the seven named hex colors of a store theme.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
}

// Fonts holds the heading and body font family names.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Layouts holds the per-section layout choices.
type Layouts struct {
	Hero         HeroLayout        `json:"hero"`
	Testimonials TestimonialLayout `json:"testimonials"`
}

// Hero is the hero section copy.
type Hero struct {
	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	CTAText         string `json:"ctaText"`
	BadgeText       string `json:"badgeText,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// Benefit is a single benefit entry.
type Benefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial is a customer testimonial shown on the store.
type Testimonial struct {
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar,omitempty"`
	Text     string  `json:"text"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
	Title    string  `json:"title,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// ComparisonSide is one column of the us-vs-them comparison block.
type ComparisonSide struct {
	Name   string   `json:"name"`
	Points []string `json:"points"`
}

// Comparison is the optional us-vs-them block.
type Comparison struct {
	Enabled bool           `json:"enabled"`
	Title   string         `json:"title"`
	Us      ComparisonSide `json:"us"`
	Them    ComparisonSide `json:"them"`
}

// Gallery is the optional image gallery block.
type Gallery struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// FAQ is a single question/answer entry.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Urgency is the scarcity/offer block.
type Urgency struct {
	StockText    string `json:"stockText"`
	OfferText    string `json:"offerText"`
	TimerEnabled bool   `json:"timerEnabled"`
	Style        string `json:"style,omitempty"` // banner, floating or inline
}

// FooterLink is a single footer navigation link.
type FooterLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Footer is the store footer block.
type Footer struct {
	Copyright string       `json:"copyright"`
	Links     []FooterLink `json:"links"`
}

// StoreConfig is the complete store configuration produced by the design
// stage. It is LLM output parsed permissively: missing optional blocks
// stay nil/zero rather than failing the parse.
type StoreConfig struct {
	StoreName    string            `json:"storeName"`
	Tagline      string            `json:"tagline"`
	Logo         string            `json:"logo,omitempty"`
	Theme        Theme             `json:"theme,omitempty"`
	Layouts      *Layouts          `json:"layouts,omitempty"`
	SectionOrder []string          `json:"sectionOrder,omitempty"`
	ColorScheme  ColorScheme       `json:"colorScheme"`
	Fonts        Fonts             `json:"fonts"`
	Hero         Hero              `json:"hero"`
	Benefits     []Benefit         `json:"benefits"`
	Testimonials []Testimonial     `json:"testimonials"`
	Comparison   *Comparison       `json:"comparison,omitempty"`
	Gallery      *Gallery          `json:"gallery,omitempty"`
	FAQ          []FAQ             `json:"faq"`
	Urgency      Urgency           `json:"urgency"`
	Footer       Footer            `json:"footer"`
}

// Validate returns an error if the config is missing fields the
// renderer mandatorily needs.
func (c *StoreConfig) Validate() error {
	if c.StoreName == "" {
		return Errorf(EINVALID, "store config name required")
	}
	return nil
}

// Slugify lowercases the name and strips every non-alphanumeric
// character, yielding the base label for fallback domain names.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FallbackDomains derives the deterministic five-entry domain suggestion
// list used when the domain-brainstorm response cannot be parsed.
func FallbackDomains(storeName string) []string {
	slug := Slugify(storeName)
	return []string{
		slug + ".com",
		slug + ".co",
		slug + ".shop",
		"get" + slug + ".com",
		slug + "store.com",
	}
}
