package storegen_test

import (
	"testing"

	"github.com/fwojciec/storegen"
	"github.com/stretchr/testify/assert"
)

func TestFallbackDomains(t *testing.T) {
	t.Parallel()

	domains := storegen.FallbackDomains("Acme Co")

	assert.Equal(t, []string{
		"acmeco.com",
		"acmeco.co",
		"acmeco.shop",
		"getacmeco.com",
		"acmecostore.com",
	}, domains)
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acmeco", storegen.Slugify("Acme Co"))
	assert.Equal(t, "glowup24", storegen.Slugify("Glow-Up! 24"))
	assert.Equal(t, "", storegen.Slugify("¡¡¡"))
}

func TestKnownSection(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"hero", "urgency", "benefits", "features", "testimonials", "comparison", "gallery", "faq", "finalCta"} {
		assert.True(t, storegen.KnownSection(id), id)
	}
	assert.False(t, storegen.KnownSection("sidebar"))
}
